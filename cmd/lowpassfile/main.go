// Command lowpassfile applies a streaming low-pass filter to a WAV file.
//
// Usage:
//
//	lowpassfile -in input.wav -out output.wav [flags]
//
// Examples:
//
//	lowpassfile -in voice.wav -out smooth.wav -filter onepole -decay 0.2
//	lowpassfile -in voice.wav -out smooth.wav -filter twotap
//	lowpassfile -in voice.wav -out smooth.wav -filter window -window 8
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-lowpass/dsp/core"
	"github.com/cwbudde/algo-lowpass/dsp/lowpass"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	out := flag.String("out", "", "output WAV file")
	filterName := flag.String("filter", "onepole", "filter type: onepole, twotap, window")
	decay := flag.Float64("decay", 0.2, "decay factor for the one-pole filter, in [0, 1]")
	window := flag.Int("window", 8, "window size for the sliding-window filter")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lowpassfile -in input.wav -out output.wav [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a streaming low-pass filter to a WAV file.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*in, *out, *filterName, *decay, *window); err != nil {
		fmt.Fprintln(os.Stderr, "lowpassfile:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, filterName string, decay float64, window int) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()

	dec := wav.NewDecoder(inFile)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 {
		return fmt.Errorf("decode %s: missing format", inPath)
	}

	channels := buf.Format.NumChannels
	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}

	filters, err := newFilters(filterName, decay, window, channels)
	if err != nil {
		return err
	}
	filterPCM(buf.Data, filters, bitDepth)

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	outBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: buf.Format.SampleRate},
		Data:           buf.Data,
		SourceBitDepth: bitDepth,
	}
	enc := wav.NewEncoder(outFile, buf.Format.SampleRate, bitDepth, channels, 1)
	if err := enc.Write(outBuf); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return enc.Close()
}

// newFilters returns one filter instance per channel so channels do not share
// state.
func newFilters(name string, decay float64, window, channels int) ([]lowpass.Filter, error) {
	filters := make([]lowpass.Filter, channels)
	for ch := range filters {
		switch name {
		case "onepole":
			if decay < 0 || decay > 1 {
				return nil, fmt.Errorf("decay %v outside [0, 1] would be unstable", decay)
			}
			filters[ch] = lowpass.NewSinglePole(decay)
		case "twotap":
			filters[ch] = lowpass.NewTwoTap()
		case "window":
			f, err := lowpass.NewSlidingWindow(window)
			if err != nil {
				return nil, err
			}
			filters[ch] = f
		default:
			return nil, fmt.Errorf("unknown filter %q (want onepole, twotap, or window)", name)
		}
	}
	return filters, nil
}

// filterPCM runs each channel of the interleaved PCM data through its own
// filter in the normalized [-1, 1] domain, then requantizes with clamping.
func filterPCM(data []int, filters []lowpass.Filter, bitDepth int) {
	channels := len(filters)
	scale := float64(int(1) << (bitDepth - 1))
	for i, v := range data {
		y := filters[i%channels].ProcessSample(float64(v) / scale)
		data[i] = int(math.Round(core.Clamp(y*scale, -scale, scale-1)))
	}
}
