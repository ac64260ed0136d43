package tensor

import "github.com/pkg/errors"

// strided is implemented by expressions backed by a strided buffer.
type strided interface {
	Strides() Strides
}

// Assign copies src into dst element by element. When the shapes are not
// identical src is wrapped in a Broadcast to dst's shape first; an error is
// returned if that is impossible. src may read from dst: every element is
// read before it is written.
//
// When dst is a contiguous strided container and src reads trivially with
// dst's strides, both sides are walked with their flat iterators instead of
// steppers.
func Assign[T any](dst Lvalue[T], src Expression[T]) error {
	shape := dst.Shape()
	if !src.Shape().Equal(shape) {
		b, err := NewBroadcast(src, shape)
		if err != nil {
			return errors.Wrap(err, "assign")
		}
		src = b
	}

	if shape.NumElements() == 0 {
		return nil
	}
	if flatAssignable(dst, src) {
		assignFlat(dst, src, shape.NumElements())
		return nil
	}
	d := XBeginShape[T](dst, shape)
	s := XBeginShape(src, shape)
	end := XEndShape[T](dst, shape)
	for ; !d.Equal(end); d.Next() {
		*d.Ref() = s.Value()
		s.Next()
	}
	return nil
}

// flatAssignable reports whether src can be copied into dst in storage
// order.
func flatAssignable(dst, src Shaped) bool {
	st, ok := dst.(strided)
	if !ok || !dst.Contiguous() {
		return false
	}
	trivial, err := src.BroadcastShape(dst.Shape().Clone())
	return err == nil && trivial && src.IsTrivialBroadcast(st.Strides())
}

func assignFlat[T any](dst Lvalue[T], src Expression[T], n int) {
	d := dst.Begin()
	s := src.Begin()
	for range n {
		ref, ok := d.(RefIterator[T])
		if !ok {
			panic("Assign: iterator is not writable")
		}
		*ref.Ref() = s.Value()
		d.Next()
		s.Next()
	}
}

// Fill writes value into every element of dst. Contiguous targets are
// filled through their flat iterator, others through a broadcast iterator
// so that gaps between strided elements are left untouched.
func Fill[T any](dst Lvalue[T], value T) {
	if !dst.Contiguous() {
		if dst.Size() == 0 {
			return
		}
		shape := dst.Shape()
		end := XEndShape[T](dst, shape)
		for it := XBeginShape[T](dst, shape); !it.Equal(end); it.Next() {
			*it.Ref() = value
		}
		return
	}
	end := dst.End()
	for it := dst.Begin(); !it.Equal(end); it.Next() {
		ref, ok := it.(RefIterator[T])
		if !ok {
			panic("Fill: iterator is not writable")
		}
		*ref.Ref() = value
	}
}

// Eval materializes e into a new array with the given layout.
func Eval[T any](e Expression[T], layout Layout) (*Array[T], error) {
	shape := unitShape(e.Dimension())
	if _, err := e.BroadcastShape(shape); err != nil {
		return nil, errors.Wrap(err, "eval")
	}
	a, err := NewArray[T](shape, layout)
	if err != nil {
		return nil, err
	}
	if err := Assign[T](a, e); err != nil {
		return nil, err
	}
	return a, nil
}
