// Copyright 2025 Poiesic Systems
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


package storage

import (
	"github.com/poiesic/viralscope/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalSearchRecord serializes a SearchRecord to bytes.
func MarshalSearchRecord(record *core.SearchRecord) []byte {
	buf := make([]byte, core.SearchRecordMUS.Size(*record))
	core.SearchRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSearchRecord deserializes a SearchRecord from bytes.
func UnmarshalSearchRecord(data []byte) (*core.SearchRecord, error) {
	record, _, err := core.SearchRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalViralImage serializes a ViralImage to bytes.
func MarshalViralImage(image *core.ViralImage) []byte {
	buf := make([]byte, core.ViralImageMUS.Size(*image))
	core.ViralImageMUS.Marshal(*image, buf)
	return buf
}

// UnmarshalViralImage deserializes a ViralImage from bytes.
func UnmarshalViralImage(data []byte) (*core.ViralImage, error) {
	image, _, err := core.ViralImageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &image, nil
}
