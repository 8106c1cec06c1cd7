// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package abimsgs

import "github.com/hyperledger/firefly-common/pkg/i18n"

var ffe = i18n.FFE

//revive:disable
var (
	// Stream / primitive codec errors
	MsgOverrun                 = ffe("FF23001", "Unexpected end of data")
	MsgInvalidVarUintEncoding  = ffe("FF23002", "Invalid varuint encoding")
	MsgBadVariantIndex         = ffe("FF23003", "Variant index %d out of range (have %d cases)")
	MsgArraySizeMismatch       = ffe("FF23004", "Array size mismatch")
	MsgInvalidNameChar         = ffe("FF23005", "Invalid character '%c' in name '%s'")
	MsgInvalidNameChar13       = ffe("FF23006", "Invalid 13th character '%c' in name '%s'")
	MsgNameTooLong             = ffe("FF23007", "Name '%s' is too long (max 13 characters)")
	MsgHexStringIncorrectLen   = ffe("FF23008", "Hex string has incorrect length %d (expected %d)")
	MsgNumberOutOfRange        = ffe("FF23009", "Number %s is out of range for type %s")

	// ABI resolution errors
	MsgRecursionLimitReached = ffe("FF23020", "Recursion limit reached resolving type '%s'")
	MsgInvalidNesting        = ffe("FF23021", "Invalid nesting of type '%s'")
	MsgUnknownType           = ffe("FF23022", "Unknown type '%s'")
	MsgMissingName           = ffe("FF23023", "Type definition is missing a name")
	MsgRedefinedType         = ffe("FF23024", "Type '%s' is redefined")
	MsgBaseNotAStruct        = ffe("FF23025", "Base type '%s' of struct '%s' is not a struct")
	MsgExtensionTypedef      = ffe("FF23026", "Alias '%s' may not resolve to an extension type")
	MsgBadABI                = ffe("FF23027", "Malformed ABI document: %s")
	MsgRedefinesSyntheticExt = ffe("FF23028", "ABI may not redefine the synthetic type '%s'")
	MsgExtensionFieldNotLast = ffe("FF23029", "Field '%s' is not extension-typed but follows an extension field of the struct")

	// JSON parsing / semantic errors
	MsgExpectedToken         = ffe("FF23040", "Expected %s but found %s")
	MsgUnexpectedField       = ffe("FF23041", "Unexpected field '%s' - extension fields must be trailing and contiguous")
	MsgExpectedField         = ffe("FF23042", "Expected field '%s' but found '%s'")
	MsgInvalidTypeForVariant = ffe("FF23043", "Type '%s' is not a valid case of variant '%s'")
	MsgInvalidJSON           = ffe("FF23044", "Invalid JSON: %s")
	MsgExpectedNumber        = ffe("FF23045", "Expected a number for type '%s'")
	MsgExpectedPositiveUint  = ffe("FF23046", "Expected a non-negative integer for type '%s'")

	// Key / signature errors
	MsgInvalidKeyChecksum = ffe("FF23060", "Checksum mismatch decoding %s")
	MsgInvalidKeyKind     = ffe("FF23061", "Unsupported key kind byte %d")
	MsgInvalidKeyPrefix   = ffe("FF23062", "Unrecognized key prefix in '%s'")
	MsgInvalidKeyLength   = ffe("FF23063", "Invalid key length %d (expected %d) for %s")
	MsgInvalidCurvePoint  = ffe("FF23064", "Invalid secp256k1 curve point")

	MsgNoContractABI   = ffe("FF23080", "No ABI loaded for contract '%s'")
	MsgUnknownTypeName = ffe("FF23081", "Type '%s' not found in ABI for contract '%s'")
	MsgNoActionType    = ffe("FF23082", "No type bound to action '%s' on contract '%s'")
)
