// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package fixvec

import (
	"testing"

	"golang.org/x/exp/slices"
)

// FuzzOps replays an arbitrary op tape against a Vec and
// a plain slice model and checks that they never disagree.
// Each tape byte encodes one operation: the low two bits
// select push/pop/clear, the rest of the byte is the value
// pushed.
func FuzzOps(f *testing.F) {
	f.Add(uint8(4), []byte{})
	f.Add(uint8(2), []byte{0x04, 0x08, 0x0c, 0x01, 0x01})
	f.Add(uint8(0), []byte{0x04, 0x01})
	f.Add(uint8(16), []byte{0x04, 0x08, 0x03, 0x0c, 0x01, 0x01, 0x01})
	f.Fuzz(func(t *testing.T, capacity uint8, tape []byte) {
		v := New[byte](int(capacity))
		var model []byte
		for _, op := range tape {
			val := op >> 2
			switch op & 3 {
			case 0, 2: // push
				err := v.TryPush(val)
				if full := len(model) == int(capacity); (err != nil) != full {
					t.Fatalf("TryPush err=%v with model len %d, cap %d", err, len(model), capacity)
				}
				if err == nil {
					model = append(model, val)
				}
			case 1: // pop
				got, ok := v.Pop()
				if ok != (len(model) > 0) {
					t.Fatalf("Pop ok=%v with model len %d", ok, len(model))
				}
				if ok {
					want := model[len(model)-1]
					model = model[:len(model)-1]
					if got != want {
						t.Fatalf("popped %d, model says %d", got, want)
					}
				}
			case 3: // clear
				v.Clear()
				model = model[:0]
			}
			if v.Len() != len(model) {
				t.Fatalf("length %d, model length %d", v.Len(), len(model))
			}
			if v.Cap() != int(capacity) {
				t.Fatalf("capacity drifted from %d to %d", capacity, v.Cap())
			}
			if !slices.Equal(v.live(), model) {
				t.Fatalf("live contents %v, model %v", v.live(), model)
			}
		}
	})
}
