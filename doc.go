/*
Package optops applies division and its checked, overflowing, and wrapping
variants transparently to values that may be wrapped in an [Option],
propagating absence instead of requiring an unwrap at every call site.

# Representation

[Option] is a struct with two fields:

  - a payload of the wrapped type;
  - a boolean indicating whether the payload is present.

The zero value is None. Absence is not an error: it is a valid third
logical state ("unknown", "not applicable") that is distinct from the
failure states reported by the checked operations. Options over comparable
payload types are themselves comparable with ==.

# Operands

A concrete type opts into the coverage by implementing the [Operand]
marker together with the interface of the variant it supports:

  - [Divider] for plain division, mirroring the / operator;
  - [DivAssigner] for in-place division, mirroring /=;
  - [CheckedDivider] for division that reports failure through an error;
  - [OverflowingDivider] for division that reports overflow through a flag;
  - [WrappingDivider] for division that wraps silently at the numeric bounds.

The result type of every variant is the left operand's type. The
right-hand type is free, so a duration can be divided by an unsigned
count; see [Duration].

Built-in coverage for the fixed-width integer primitives (and for any
defined type whose underlying type is an integer, such as [time.Duration]
with operands of equal type) is provided by the
[github.com/a-kenji/optops/intops] package.

# Call shapes

Each variant is callable with any mix of bare value, Option, and
pointer-to-Option on the right, and bare value or Option on the left.
The function name spells the shape: an Opt prefix marks an Option on the
left, an Opt or Ref suffix marks an Option or *Option on the right.

	| Left      | Right      | Plain     | Checked          |
	| --------- | ---------- | --------- | ---------------- |
	| T         | R          | Div       | CheckedDiv       |
	| T         | Option[R]  | DivOpt    | CheckedDivOpt    |
	| T         | *Option[R] | DivRef    | CheckedDivRef    |
	| Option[T] | R          | OptDiv    | OptCheckedDiv    |
	| Option[T] | Option[R]  | OptDivOpt | OptCheckedDivOpt |
	| Option[T] | *Option[R] | OptDivRef | OptCheckedDivRef |

The assigning, overflowing, and wrapping families follow the same grid.
Every shape checks for absence first: if either operand is None, the
result is None (for the assigning family, the left operand is left
untouched) and the underlying operation is never invoked. The Ref shapes
only read through the pointer; the referenced Option is never modified,
and a nil pointer reads as None.

# Failure channels

Absence propagation and arithmetic failure are never conflated.

The plain, assigning, overflowing, and wrapping families inherit the
concrete type's behavior for a zero divisor — for the built-in integer
and duration coverage that is a panic, matching the / operator. Callers
choose these families when a zero divisor is excluded by construction.

The checked family never panics. It reports exactly one of:

  - (None, nil) — at least one operand was absent;
  - (None, [ErrDivisionByZero]) — both present, divisor is zero;
  - (None, [ErrOverflow]) — both present, the exact quotient is not
    representable (for a signed integer, the minimum value divided by
    minus one);
  - (Some(quotient), nil) — otherwise.

A zero divisor is detected before overflow, so the two errors are
mutually exclusive.

The overflowing family always succeeds when both operands are present,
returning the wrapped quotient and a flag that is true exactly when the
exact quotient was not representable. The wrapping family returns the
same quotient and discards the flag.
*/
package optops
