package memkit_test

import (
	"fmt"

	"github.com/hupe1980/memkit"
)

// Example_copy demonstrates a plain non-overlapping copy.
func Example_copy() {
	src := []byte("hello, memkit")
	dst := make([]byte, len(src))

	n := memkit.Copy(dst, src)

	fmt.Println(n, string(dst))
	// Output: 13 hello, memkit
}

// Example_move demonstrates an overlap-safe move within one buffer.
func Example_move() {
	buf := []byte("abcdefgh")

	// Shift the first five bytes forward by three; the regions overlap in
	// the direction where a naive ascending copy would corrupt the data.
	memkit.Move(buf[3:], buf[:5])

	fmt.Println(string(buf))
	// Output: abcabcde
}

// Example_fill demonstrates word-wise fill and zero.
func Example_fill() {
	buf := make([]byte, 4)

	memkit.Fill(buf, 0x2A)
	fmt.Println(buf)

	memkit.Zero(buf)
	fmt.Println(buf)
	// Output:
	// [42 42 42 42]
	// [0 0 0 0]
}
