// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "strconv"

const (
	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId int64) string {
	return "tenant:" + strconv.FormatInt(tenantId, 10)
}
