package main

const (
	defaultBinarySampleSize = 1024
	defaultBinaryThreshold  = 0.30
)

func defaultBinaryConfig() BinaryConfig {
	return BinaryConfig{
		SampleSize: defaultBinarySampleSize,
		Threshold:  defaultBinaryThreshold,
	}
}

// isBinaryContent classifies content by inspecting its leading sample: a
// NUL byte means binary, as does a fraction of bytes outside printable
// ASCII and common whitespace above the configured threshold. Pure function
// of the sample.
func isBinaryContent(content []byte, cfg BinaryConfig) bool {
	sample := content
	if cfg.SampleSize > 0 && len(sample) > cfg.SampleSize {
		sample = sample[:cfg.SampleSize]
	}
	if len(sample) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if b == 0x00 {
			return true
		}
		if !isPrintableByte(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > cfg.Threshold
}

func isPrintableByte(b byte) bool {
	switch b {
	case '\n', '\r', '\t', '\f', '\v':
		return true
	}
	return b >= 0x20 && b <= 0x7e
}
