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


package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted types. Field order defines the wire
// format; new fields must be appended, never reordered.

var (
	IDMUS           = idMUS{}
	SearchRecordMUS = searchRecordMUS{}
	ViralImageMUS   = viralImageMUS{}

	timeMUS        = timeSer{}
	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

var (
	_ mus.Serializer[ID]           = idMUS{}
	_ mus.Serializer[SearchRecord] = searchRecordMUS{}
	_ mus.Serializer[ViralImage]   = viralImageMUS{}
	_ mus.Serializer[time.Time]    = timeSer{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeSer encodes instants as Unix microseconds. Decoded values are UTC.
type timeSer struct{}

func (timeSer) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeSer) Unmarshal(bs []byte) (time.Time, int, error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func (timeSer) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeSer) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

type searchRecordMUS struct{}

func (searchRecordMUS) Marshal(v SearchRecord, bs []byte) int {
	n := IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Query, bs[n:])
	n += ord.String.Marshal(string(v.Status), bs[n:])
	n += varint.Int.Marshal(v.TotalResults, bs[n:])
	n += timeMUS.Marshal(v.CreatedAt, bs[n:])
	n += timeMUS.Marshal(v.UpdatedAt, bs[n:])
	n += ord.Bool.Marshal(v.CompletedAt != nil, bs[n:])
	if v.CompletedAt != nil {
		n += timeMUS.Marshal(*v.CompletedAt, bs[n:])
	}
	return n
}

func (searchRecordMUS) Unmarshal(bs []byte) (v SearchRecord, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Query, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var status string
	if status, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.Status = SearchStatus(status)
	if v.TotalResults, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.CreatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	var hasCompleted bool
	if hasCompleted, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if hasCompleted {
		var completed time.Time
		if completed, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
			return v, n + n1, err
		}
		n += n1
		v.CompletedAt = &completed
	}
	return
}

func (searchRecordMUS) Size(v SearchRecord) int {
	size := IDMUS.Size(v.Id)
	size += ord.String.Size(v.Query)
	size += ord.String.Size(string(v.Status))
	size += varint.Int.Size(v.TotalResults)
	size += timeMUS.Size(v.CreatedAt)
	size += timeMUS.Size(v.UpdatedAt)
	size += ord.Bool.Size(v.CompletedAt != nil)
	if v.CompletedAt != nil {
		size += timeMUS.Size(*v.CompletedAt)
	}
	return size
}

func (searchRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for i := 0; i < 2; i++ {
		if n1, err = timeMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	var hasCompleted bool
	if hasCompleted, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if hasCompleted {
		if n1, err = timeMUS.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return
}

type viralImageMUS struct{}

func (viralImageMUS) Marshal(v ViralImage, bs []byte) int {
	n := IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.SearchId, bs[n:])
	n += ord.String.Marshal(v.ImageURL, bs[n:])
	n += ord.String.Marshal(v.PostURL, bs[n:])
	n += ord.String.Marshal(string(v.Platform), bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int.Marshal(v.EngagementScore, bs[n:])
	n += varint.Int.Marshal(v.ViewsEstimate, bs[n:])
	n += varint.Int.Marshal(v.LikesEstimate, bs[n:])
	n += varint.Int.Marshal(v.CommentsEstimate, bs[n:])
	n += varint.Int.Marshal(v.SharesEstimate, bs[n:])
	n += ord.String.Marshal(v.Author, bs[n:])
	n += varint.Int.Marshal(v.AuthorFollowers, bs[n:])
	n += timeMUS.Marshal(v.PostDate, bs[n:])
	n += stringSliceMUS.Marshal(v.Hashtags, bs[n:])
	n += timeMUS.Marshal(v.CreatedAt, bs[n:])
	return n
}

func (viralImageMUS) Unmarshal(bs []byte) (v ViralImage, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.SearchId, n1, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	strFields := []*string{&v.ImageURL, &v.PostURL}
	for _, field := range strFields {
		if *field, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return v, n + n1, err
		}
		n += n1
	}
	var platform string
	if platform, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	v.Platform = Platform(platform)
	strFields = []*string{&v.Title, &v.Description}
	for _, field := range strFields {
		if *field, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return v, n + n1, err
		}
		n += n1
	}
	intFields := []*int{&v.EngagementScore, &v.ViewsEstimate, &v.LikesEstimate, &v.CommentsEstimate, &v.SharesEstimate}
	for _, field := range intFields {
		if *field, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
			return v, n + n1, err
		}
		n += n1
	}
	if v.Author, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.AuthorFollowers, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.PostDate, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.Hashtags, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	if v.CreatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + n1, err
	}
	n += n1
	return
}

func (viralImageMUS) Size(v ViralImage) int {
	size := IDMUS.Size(v.Id)
	size += IDMUS.Size(v.SearchId)
	size += ord.String.Size(v.ImageURL)
	size += ord.String.Size(v.PostURL)
	size += ord.String.Size(string(v.Platform))
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += varint.Int.Size(v.EngagementScore)
	size += varint.Int.Size(v.ViewsEstimate)
	size += varint.Int.Size(v.LikesEstimate)
	size += varint.Int.Size(v.CommentsEstimate)
	size += varint.Int.Size(v.SharesEstimate)
	size += ord.String.Size(v.Author)
	size += varint.Int.Size(v.AuthorFollowers)
	size += timeMUS.Size(v.PostDate)
	size += stringSliceMUS.Size(v.Hashtags)
	size += timeMUS.Size(v.CreatedAt)
	return size
}

func (viralImageMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	if n1, err = IDMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for i := 0; i < 5; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	for i := 0; i < 5; i++ {
		if n1, err = varint.Int.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = timeMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = timeMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	return
}
