/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"math"

	hErrors "github.com/nemtech/symbol-direct-connect/app/errors"
	"github.com/pkg/errors"
)

// CastToInt64 converts a height or a count into the signed 64-bit form the node stores it in
func CastToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, errors.Wrapf(hErrors.ErrInvalidArgument, "%d is out of the int64 range", value)
	}

	return int64(value), nil
}
