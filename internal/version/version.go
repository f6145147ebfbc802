// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is overridden at build time with -ldflags "-X ...version.Version=<tag>".
var Version = "dev"

// Name is the service name reported on build info endpoints.
const Name = "onboarding-service"
