// Package ids maps internal location row ids to the opaque strings used in
// URLs, so sequential database keys never leak through the API.
package ids

import (
	"errors"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidID = errors.New("invalid id")

type Codec struct {
	h *hashids.HashID
}

func NewCodec(salt string, minLength int) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id int64) (string, error) {
	return c.h.EncodeInt64([]int64{id})
}

// Decode returns ErrInvalidID for anything that was not produced by Encode
// with the same salt.
func (c *Codec) Decode(public string) (int64, error) {
	if public == "" {
		return 0, ErrInvalidID
	}
	nums, err := c.h.DecodeInt64WithError(public)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, ErrInvalidID
	}
	return nums[0], nil
}
