// SPDX-License-Identifier: Apache-2.0

package cmd

import "errors"

var errInteractiveWithPlan = errors.New("--interactive cannot be combined with --plan")
