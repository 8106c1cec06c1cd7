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

package eosabi

import (
	"context"
	"encoding/hex"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/eosio-abi/internal/abimsgs"
	"github.com/kaleido-io/eosio-abi/pkg/eosiotypes"
)

// Context is the façade over a set of loaded contract ABIs (spec.md §5/§8
// C8): callers register an ABI per contract account, then transcode values
// of any type or action/table named in that ABI. A single Context is safe
// for concurrent use by multiple goroutines, mirroring the mutex-guarded
// registries in the teacher's signer context.
type Context struct {
	mu   sync.RWMutex
	abis map[eosiotypes.Name]*ABI
}

// NewContext returns an empty Context with no ABIs loaded.
func NewContext() *Context {
	return &Context{
		abis: make(map[eosiotypes.Name]*ABI),
	}
}

// SetABI parses and resolves def, and registers it against contract. A
// second call for the same contract replaces its previously loaded ABI.
func (c *Context) SetABI(ctx context.Context, contract string, def *Def) error {
	n, err := eosiotypes.StringToNameStrict(ctx, contract)
	if err != nil {
		return err
	}
	abi, err := Resolve(ctx, def)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abis[n] = abi
	return nil
}

func (c *Context) lookupABI(ctx context.Context, contract string) (*ABI, error) {
	n, err := eosiotypes.StringToNameStrict(ctx, contract)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	abi, ok := c.abis[n]
	if !ok {
		return nil, i18n.NewError(ctx, abimsgs.MsgNoContractABI, contract)
	}
	return abi, nil
}

// GetTypeForAction resolves the struct (or other) type name bound to an
// action on contract (spec.md §5 C8).
func (c *Context) GetTypeForAction(ctx context.Context, contract, action string) (string, error) {
	abi, err := c.lookupABI(ctx, contract)
	if err != nil {
		return "", err
	}
	typeName, ok := abi.ActionTypes[action]
	if !ok {
		return "", i18n.NewError(ctx, abimsgs.MsgNoActionType, action, contract)
	}
	return typeName, nil
}

// GetTypeForTable resolves the row type name bound to a table on contract.
func (c *Context) GetTypeForTable(ctx context.Context, contract, table string) (string, error) {
	abi, err := c.lookupABI(ctx, contract)
	if err != nil {
		return "", err
	}
	typeName, ok := abi.TableTypes[table]
	if !ok {
		return "", i18n.NewError(ctx, abimsgs.MsgNoActionType, table, contract)
	}
	return typeName, nil
}

func (c *Context) resolveType(ctx context.Context, contract, typeName string) (*ABI, *Type, error) {
	abi, err := c.lookupABI(ctx, contract)
	if err != nil {
		return nil, nil, err
	}
	t, ok := abi.Types[typeName]
	if !ok {
		return nil, nil, i18n.NewError(ctx, abimsgs.MsgUnknownTypeName, typeName, contract)
	}
	return abi, t, nil
}

// JSONToBin transcodes a JSON document of the named type into its binary
// ABI wire representation, using the strict streaming path (spec.md §7(c)
// canonical direction - field order must match the struct's declaration).
func (c *Context) JSONToBin(ctx context.Context, contract, typeName string, jsonData []byte) ([]byte, error) {
	_, t, err := c.resolveType(ctx, contract, typeName)
	if err != nil {
		return nil, err
	}
	w := newBinWriter()
	if err := encodeStrict(ctx, t, newTokenStream(jsonData), w, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// JSONToBinReorderable is the same transcode as JSONToBin but tolerates
// struct fields in any order, at the cost of parsing the whole document
// into a tree before walking it (spec.md §7(c) alternate path).
func (c *Context) JSONToBinReorderable(ctx context.Context, contract, typeName string, jsonData []byte) ([]byte, error) {
	_, t, err := c.resolveType(ctx, contract, typeName)
	if err != nil {
		return nil, err
	}
	tree, err := parseJSONTree(ctx, jsonData)
	if err != nil {
		return nil, err
	}
	w := newBinWriter()
	if err := encodeReorderable(ctx, t, tree, w, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// BinToJSON transcodes a binary ABI wire payload of the named type into its
// canonical (compact, declaration-ordered) JSON text.
func (c *Context) BinToJSON(ctx context.Context, contract, typeName string, bin []byte) ([]byte, error) {
	_, t, err := c.resolveType(ctx, contract, typeName)
	if err != nil {
		return nil, err
	}
	w := newJSONWriter()
	if err := decodeToJSON(ctx, t, newBinReader(bin), w, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// HexToJSON is a convenience wrapper over BinToJSON for callers holding the
// wire payload as a hex string (as commonly returned by chain RPC nodes).
func (c *Context) HexToJSON(ctx context.Context, contract, typeName, hexData string) ([]byte, error) {
	bin, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, abimsgs.MsgInvalidJSON, hexData)
	}
	return c.BinToJSON(ctx, contract, typeName, bin)
}

// StringToName parses s as an EOSIO name under strict 13-character rules.
func StringToName(ctx context.Context, s string) (eosiotypes.Name, error) {
	return eosiotypes.StringToNameStrict(ctx, s)
}

// NameToString renders n back to its base-32 string form.
func NameToString(n eosiotypes.Name) string {
	return n.String()
}

// Definition returns the unresolved ABI document this ABI was built from -
// the synthetic extended_asset struct injected during resolution (spec.md
// §6 Open Question (b)) is never added to it, so round-tripping through
// SetABI and Definition reproduces exactly what the caller supplied.
func (a *ABI) Definition() *Def {
	return a.Def
}
