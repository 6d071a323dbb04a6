// SPDX-License-Identifier: EPL-2.0

package fitness

import "errors"

var ErrLengthMismatch = errors.New("target and proposed signals differ in length")
