// Copyright (c) 2020-2023 Blockwatch Data Inc.
// Author: alex@blockwatch.cc

package codec

import (
	"bytes"
	"fmt"

	"github.com/chainsquad/bitshares-core/bitshares"
)

// WorkerCreate represents the "worker_create" operation.
type WorkerCreate struct {
	FeeAsset      bitshares.Asset        `json:"fee"`
	Owner         bitshares.AccountID    `json:"owner"`
	WorkBeginDate bitshares.TimePointSec `json:"work_begin_date"`
	WorkEndDate   bitshares.TimePointSec `json:"work_end_date"`
	DailyPay      bitshares.ShareType    `json:"daily_pay"`
	Name          string                 `json:"name"`
	Url           string                 `json:"url"`
	Initializer   bitshares.WorkerInit   `json:"initializer"`
}

func (o WorkerCreate) Kind() OpType                  { return OpTypeWorkerCreate }
func (o WorkerCreate) Fee() bitshares.Asset          { return o.FeeAsset }
func (o WorkerCreate) FeePayer() bitshares.AccountID { return o.Owner }

func (o WorkerCreate) Validate(_ *bitshares.Params) error {
	if o.FeeAsset.Amount < 0 {
		return fmt.Errorf("codec: fee amount can not be negative")
	}
	if !o.WorkBeginDate.Before(o.WorkEndDate) {
		return fmt.Errorf("codec: work_begin_date must be earlier than work_end_date")
	}
	if o.DailyPay <= 0 {
		return fmt.Errorf("codec: daily pay must be positive")
	}
	return nil
}

func (o WorkerCreate) EncodeBuffer(buf *bytes.Buffer) error {
	writeU32(buf, uint32(o.Kind()))
	encodeAsset(buf, o.FeeAsset)
	writeU64(buf, uint64(o.Owner))
	writeU32(buf, uint32(o.WorkBeginDate))
	writeU32(buf, uint32(o.WorkEndDate))
	writeI64(buf, int64(o.DailyPay))
	writeString(buf, o.Name)
	writeString(buf, o.Url)
	buf.WriteByte(byte(o.Initializer.Kind))
	writeU16(buf, o.Initializer.PayVestingPeriodDays)
	return nil
}

func (o *WorkerCreate) DecodeBuffer(buf *bytes.Buffer) (err error) {
	if err = ensureTag(buf, o.Kind()); err != nil {
		return
	}
	if err = decodeAsset(buf, &o.FeeAsset); err != nil {
		return
	}
	var x uint64
	if x, err = readU64(buf); err != nil {
		return
	}
	o.Owner = bitshares.AccountID(x)
	var t uint32
	if t, err = readU32(buf); err != nil {
		return
	}
	o.WorkBeginDate = bitshares.TimePointSec(t)
	if t, err = readU32(buf); err != nil {
		return
	}
	o.WorkEndDate = bitshares.TimePointSec(t)
	var n int64
	if n, err = readI64(buf); err != nil {
		return
	}
	o.DailyPay = bitshares.ShareType(n)
	if o.Name, err = readString(buf); err != nil {
		return
	}
	if o.Url, err = readString(buf); err != nil {
		return
	}
	var kind byte
	if kind, err = buf.ReadByte(); err != nil {
		return
	}
	o.Initializer.Kind = bitshares.WorkerInitKind(kind)
	o.Initializer.PayVestingPeriodDays, err = readU16(buf)
	return
}

func (o WorkerCreate) MarshalBinary() ([]byte, error) { return marshalOperation(o) }

func (o *WorkerCreate) UnmarshalBinary(data []byte) error {
	return o.DecodeBuffer(bytes.NewBuffer(data))
}

func init() {
	RegisterSchema(&Schema{
		OpType: OpTypeWorkerCreate,
		New:    func() Operation { return new(WorkerCreate) },
		Fields: []FieldDescriptor{
			{Name: "fee", Type: ValueTypeAsset},
			{Name: "owner", Type: ValueTypeAccountId},
			{Name: "work_begin_date", Type: ValueTypeTimePointSec},
			{Name: "work_end_date", Type: ValueTypeTimePointSec},
			{Name: "daily_pay", Type: ValueTypeShareType},
			{Name: "name", Type: ValueTypeText},
			{Name: "url", Type: ValueTypeText},
			{Name: "initializer", Type: ValueTypeWorkerInit},
		},
		Access: func(op Operation, name string) (Value, bool) {
			o := op.(*WorkerCreate)
			switch name {
			case "fee":
				return NewAsset(o.FeeAsset), true
			case "owner":
				return NewAccountId(o.Owner), true
			case "work_begin_date":
				return NewTimePointSec(o.WorkBeginDate), true
			case "work_end_date":
				return NewTimePointSec(o.WorkEndDate), true
			case "daily_pay":
				return NewShareType(o.DailyPay), true
			case "name":
				return NewText(o.Name), true
			case "url":
				return NewText(o.Url), true
			case "initializer":
				return NewWorkerInit(o.Initializer), true
			}
			return Value{}, false
		},
	})
}
