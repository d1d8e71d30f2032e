package material

import (
	"testing"

	"github.com/danaf/gorender/pkg/core"
)

func TestTextureNearestSample(t *testing.T) {
	// 2x2 RGB texture: top-left red, top-right green, bottom-left blue,
	// bottom-right white.
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	tex, err := NewTexture(2, 2, 3, pixels, Nearest)
	if err != nil {
		t.Fatal(err)
	}

	c00, _ := tex.Sample(0, 0)
	if !c00.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Sample(0,0) = %v, want red", c00)
	}
	c11, _ := tex.Sample(1, 1)
	if !c11.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Sample(1,1) = %v, want white", c11)
	}
}

func TestTextureRejectsBadChannelCount(t *testing.T) {
	if _, err := NewTexture(1, 1, 2, []byte{1, 2}, Nearest); err == nil {
		t.Error("expected error for unsupported channel count")
	}
}

func TestTextureRejectsBadBufferSize(t *testing.T) {
	if _, err := NewTexture(2, 2, 3, []byte{1, 2, 3}, Nearest); err == nil {
		t.Error("expected error for buffer size mismatch")
	}
}

func TestTextureUnsupportedFilterMode(t *testing.T) {
	tex, err := NewTexture(1, 1, 3, []byte{1, 2, 3}, Bilinear)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tex.Sample(0, 0); err != ErrFilterNotImplemented {
		t.Errorf("expected ErrFilterNotImplemented, got %v", err)
	}
}
