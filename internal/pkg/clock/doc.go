// Package clock provides a tiny time abstraction.
//
// Code that reasons about time, such as one-time code expiry or credential
// lifetimes, should depend on the Clocker interface instead of calling
// time.Now() directly. Tests then swap in a fake clock and move time forward
// deterministically.
package clock
