// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package requestctx

import (
	"errors"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidHash = errors.New("invalid tenant hash")

// Hasher converts tenant ids to and from the opaque strings exposed to clients.
type Hasher struct {
	h *hashids.HashID
}

func NewHasher(salt string, minLength int) (*Hasher, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant hasher: %w", err)
	}

	return &Hasher{h: h}, nil
}

func (h *Hasher) Encode(id int64) (string, error) {
	return h.h.EncodeInt64([]int64{id})
}

func (h *Hasher) Decode(hash string) (int64, error) {
	ids, err := h.h.DecodeInt64WithError(hash)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	if len(ids) != 1 {
		return 0, ErrInvalidHash
	}

	return ids[0], nil
}
