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

import "strings"

const HexPrefix string = "0x"

// SafeRemoveHexPrefix - removes 0x or 0X prefix from a hash or key if it has one
func SafeRemoveHexPrefix(value string) string {
	if len(value) >= len(HexPrefix) && strings.EqualFold(value[:len(HexPrefix)], HexPrefix) {
		return value[len(HexPrefix):]
	}
	return value
}
