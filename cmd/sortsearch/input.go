package main

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrInvalidSequence is returned when the sequence is not a JSON array
	ErrInvalidSequence = errors.New("invalid sequence")
	// ErrInvalidTarget is returned when the target is not a JSON number or string
	ErrInvalidTarget = errors.New("invalid target")
	// ErrMixedKinds is returned when the sequence mixes numbers and strings, or the target does not match them
	ErrMixedKinds = errors.New("numbers and strings can not be mixed")
	// ErrUnsupportedKind is returned for JSON values other than numbers and strings
	ErrUnsupportedKind = errors.New("only numbers and strings are supported")
	// ErrTargetWithoutSequence is returned when a target is given but there is nothing to search in
	ErrTargetWithoutSequence = errors.New("target requires a sequence")
)

type kind uint8

const (
	kindNone kind = iota
	kindNumber
	kindString
)

func (k kind) String() string {
	switch k {
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	}
	return "none"
}

// input carries a decoded sequence and an optional target, only the slice matching kind is populated.
type input struct {
	kind      kind
	numbers   []float64
	strings   []string
	number    float64
	str       string
	hasTarget bool
}

func valueKind(v *structpb.Value) (kind, error) {
	switch v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return kindNumber, nil
	case *structpb.Value_StringValue:
		return kindString, nil
	}
	return kindNone, fmt.Errorf("%w: got %s", ErrUnsupportedKind, protojson.Format(v))
}

// parseInput decodes a JSON array of numbers or strings and an optional JSON target value.
func parseInput(sequence, target string) (*input, error) {
	in := &input{}
	if sequence == "" {
		if target != "" {
			return nil, ErrTargetWithoutSequence
		}
		return in, nil
	}
	l := &structpb.ListValue{}
	if err := protojson.Unmarshal([]byte(sequence), l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSequence, err)
	}
	for i, v := range l.GetValues() {
		k, err := valueKind(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrInvalidSequence, i, err)
		}
		if in.kind != kindNone && in.kind != k {
			return nil, fmt.Errorf("%w: element %d is a %s, previous elements are of kind %s", ErrMixedKinds, i, k, in.kind)
		}
		in.kind = k
		switch k {
		case kindNumber:
			in.numbers = append(in.numbers, v.GetNumberValue())
		case kindString:
			in.strings = append(in.strings, v.GetStringValue())
		}
	}
	if target == "" {
		return in, nil
	}
	t := &structpb.Value{}
	if err := protojson.Unmarshal([]byte(target), t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	k, err := valueKind(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if in.kind == kindNone {
		// Empty sequence, the target alone decides the kind.
		in.kind = k
	}
	if k != in.kind {
		return nil, fmt.Errorf("%w: target is a %s, sequence is of kind %s", ErrMixedKinds, k, in.kind)
	}
	in.hasTarget = true
	in.number = t.GetNumberValue()
	in.str = t.GetStringValue()

	return in, nil
}
