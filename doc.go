// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package dim provides physical quantities whose units are checked for
// dimensional consistency.
//
// A Quantity[U] carries a float64 in the canonical units of its System and a
// zero-size unit tag U. Adding or comparing quantities of different tags is
// rejected by the compiler. Products, quotients, powers and roots produce a
// DynamicQuantity, whose unit is checked at runtime; As, MulAs and DivAs
// bring such a result back to a static Quantity.
//
// A NaN scalar marks a bad quantity ("no measurement"). It propagates through
// arithmetic, every comparison against it is false and IsBad is the only
// reliable test.
//
//	d := si.Meters(100)
//	t := si.Seconds(9.58)
//	v, err := dim.DivAs[si.MeterPerSecond](d, t)
//
// Text input and output live in package format; the SI system and its default
// symbol tables live in package si.
package dim
