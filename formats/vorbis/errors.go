// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrInvalidStream = errors.New("not a decodable Ogg Vorbis stream")
