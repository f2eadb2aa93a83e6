// SPDX-License-Identifier: EPL-2.0

package vemo_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/vemo"
	"github.com/ik5/vemo/formats/wav"
)

// Example_convert decodes a WAV upload and re-encodes it as 16 kHz mono.
func Example_convert() {
	// One second of 8 kHz stereo, as a browser might record it
	samples := make([]int16, 8000*2)
	upload := new(bytes.Buffer)
	if err := wav.WriteWAV16(upload, 8000, 2, samples); err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(upload)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer src.Close()

	data, err := vemo.Convert(src, vemo.Options{TargetRate: 16000, Mono: true})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bytes, %d Hz, %d channel(s)\n",
		len(data),
		binary.LittleEndian.Uint32(data[24:28]),
		binary.LittleEndian.Uint16(data[22:24]))
	// Output: 32044 bytes, 16000 Hz, 1 channel(s)
}
