// Code generated by musgen-go. DO NOT EDIT.

package corpus

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

var (
	slice6ΔWvkkoLnBAoBqN3Ui638QΞΞ = ord.NewSliceSer[Image](ImageMUS)
	sliceLΔgJ724k4lEDt7ggXVfgBAΞΞ = ord.NewSliceSer[string](ord.String)
	sliceRSB3soxOqX5Tdw4HpF7algΞΞ = ord.NewSliceSer[Attachment](AttachmentMUS)
)

var AttachmentMUS = attachmentMUS{}

type attachmentMUS struct{}

func (s attachmentMUS) Marshal(v Attachment, bs []byte) (n int) {
	n = ord.String.Marshal(v.Type, bs)
	return n + ord.String.Marshal(v.Name, bs[n:])
}

func (s attachmentMUS) Unmarshal(bs []byte) (v Attachment, n int, err error) {
	v.Type, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s attachmentMUS) Size(v Attachment) (size int) {
	size = ord.String.Size(v.Type)
	return size + ord.String.Size(v.Name)
}

func (s attachmentMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ImageMUS = imageMUS{}

type imageMUS struct{}

func (s imageMUS) Marshal(v Image, bs []byte) (n int) {
	return ord.String.Marshal(v.URL, bs)
}

func (s imageMUS) Unmarshal(bs []byte) (v Image, n int, err error) {
	v.URL, n, err = ord.String.Unmarshal(bs)
	return
}

func (s imageMUS) Size(v Image) (size int) {
	return ord.String.Size(v.URL)
}

func (s imageMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	return
}

var RecordMUS = recordMUS{}

type recordMUS struct{}

func (s recordMUS) Marshal(v Record, bs []byte) (n int) {
	n = ord.String.Marshal(v.UUID, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += sliceLΔgJ724k4lEDt7ggXVfgBAΞΞ.Marshal(v.Tags, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Created, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Updated, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += sliceRSB3soxOqX5Tdw4HpF7algΞΞ.Marshal(v.Attachments, bs[n:])
	return n + slice6ΔWvkkoLnBAoBqN3Ui638QΞΞ.Marshal(v.Images, bs[n:])
}

func (s recordMUS) Unmarshal(bs []byte) (v Record, n int, err error) {
	v.UUID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = sliceLΔgJ724k4lEDt7ggXVfgBAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Created, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Updated, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Attachments, n1, err = sliceRSB3soxOqX5Tdw4HpF7algΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Images, n1, err = slice6ΔWvkkoLnBAoBqN3Ui638QΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recordMUS) Size(v Record) (size int) {
	size = ord.String.Size(v.UUID)
	size += ord.String.Size(v.Name)
	size += sliceLΔgJ724k4lEDt7ggXVfgBAΞΞ.Size(v.Tags)
	size += raw.TimeUnixMicro.Size(v.Created)
	size += raw.TimeUnixMicro.Size(v.Updated)
	size += ord.String.Size(v.Content)
	size += sliceRSB3soxOqX5Tdw4HpF7algΞΞ.Size(v.Attachments)
	return size + slice6ΔWvkkoLnBAoBqN3Ui638QΞΞ.Size(v.Images)
}

func (s recordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLΔgJ724k4lEDt7ggXVfgBAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceRSB3soxOqX5Tdw4HpF7algΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice6ΔWvkkoLnBAoBqN3Ui638QΞΞ.Skip(bs[n:])
	n += n1
	return
}
