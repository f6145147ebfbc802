// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the identity sent by the identity provider's
// after-registration hook.
type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string     `json:"email"`
	Name  KratosName `json:"name"`
}

type KratosName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type RegistrationResponse struct {
	Status string `json:"status"`
}
