// Copyright 2025 Terramate GmbH
// SPDX-License-Identifier: MPL-2.0

package parser

import "errors"

var errNonFiniteNumber = errors.New("non-finite number literal")
