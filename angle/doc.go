// Package angle normalizes angular values expressed in turns, radians
// or degrees into a single period window centered on a caller-supplied
// value: the result of a normalization around c always lies in
// [c − period/2, c + period/2), with the lower bound inclusive.
//
// Conversions between the three units are exact multiplications by the
// period ratio; normalization is the only non-trivial operation and is
// shared by all units through the period constant.
package angle
