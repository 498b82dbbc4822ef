// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lyneate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvertedSpan is wrapped by a [SpanError] whose span starts after it
	// ends.
	ErrInvertedSpan = errors.New("start is after end")

	// ErrSpanOutOfBounds is wrapped by a [SpanError] whose span extends past
	// either end of the text.
	ErrSpanOutOfBounds = errors.New("span is out of bounds")
)

// SpanError is returned when an annotation's span is not valid for the text
// it annotates.
type SpanError struct {
	Index int  // The index of the annotation in the list given.
	Span  Span // The span as given, in the caller's units.
	Len   int  // The length of the text, in the same units as Span.

	// Why the span was rejected. Either one of the Err* values in this
	// package, or a *source.OffsetError for byte offsets that split a UTF-8
	// character.
	Err error
}

// Error implements [error].
func (e *SpanError) Error() string {
	return fmt.Sprintf("lyneate: annotation %d has invalid span %d..%d for text of length %d: %v",
		e.Index, e.Span.Start, e.Span.End, e.Len, e.Err)
}

// Unwrap implements the interface used by [errors.Is] and [errors.As].
func (e *SpanError) Unwrap() error {
	return e.Err
}

// checkSpan validates a span against a text of the given length.
func checkSpan(index int, span Span, length int) error {
	var err error
	switch {
	case span.Start < 0 || span.End > length:
		err = ErrSpanOutOfBounds
	case span.Start > span.End:
		err = ErrInvertedSpan
	default:
		return nil
	}
	return &SpanError{Index: index, Span: span, Len: length, Err: err}
}
