/*
   Copyright 2025 The Oxiderr Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package oxiderr

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToValue serializes the whole container into a structpb.Value.
//
// The resulting structure is:
//
//	{
//	  "class":   "<side>::<kind-name>::<type-name>",
//	  "message": "...",
//	  "kind":    {"name": ..., "message_id": ..., "code": ..., "description": ...},
//	  "details": {...}          // only when details are present
//	}
//
// Cause is deliberately excluded: an arbitrary Go error has no canonical
// structured form, and the cause chain is a debugging aid, not part of the
// wire contract.
//
// Serialization fails when a string field falls outside the protobuf Struct
// model (invalid UTF-8). Per the conversion contract, callers must propagate
// that failure instead of dropping the value.
func (e *Error) ToValue() (*structpb.Value, error) {
	if e == nil {
		return structpb.NewNullValue(), nil
	}

	class, err := structpb.NewValue(e.Class)
	if err != nil {
		return nil, fmt.Errorf("oxiderr: serialize class: %w", err)
	}
	message, err := structpb.NewValue(e.Message)
	if err != nil {
		return nil, fmt.Errorf("oxiderr: serialize message: %w", err)
	}
	kv, err := kindValue(e)
	if err != nil {
		return nil, err
	}

	fields := map[string]*structpb.Value{
		"class":   class,
		"message": message,
		"kind":    kv,
	}
	if e.Details != nil {
		dm := make(map[string]*structpb.Value, len(e.Details))
		for k, v := range e.Details {
			dm[k] = v
		}
		fields["details"] = structpb.NewStructValue(&structpb.Struct{Fields: dm})
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
}

// kindValue serializes the kind record of e.
func kindValue(e *Error) (*structpb.Value, error) {
	name, err := structpb.NewValue(e.Kind.Name())
	if err != nil {
		return nil, fmt.Errorf("oxiderr: serialize kind name: %w", err)
	}
	id, err := structpb.NewValue(e.Kind.MessageID())
	if err != nil {
		return nil, fmt.Errorf("oxiderr: serialize kind message id: %w", err)
	}
	desc, err := structpb.NewValue(e.Kind.Description())
	if err != nil {
		return nil, fmt.Errorf("oxiderr: serialize kind description: %w", err)
	}
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"name":        name,
		"message_id":  id,
		"code":        structpb.NewNumberValue(float64(e.Kind.Code())),
		"description": desc,
	}}), nil
}
