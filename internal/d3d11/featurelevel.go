package d3d11

import "fmt"

// FeatureLevel is a negotiated Direct3D capability tier. The numeric
// values match D3D_FEATURE_LEVEL: the major version in bits 12-15, the
// minor version in bits 8-11.
type FeatureLevel uint32

const (
	FeatureLevel9_1  FeatureLevel = 0x9100
	FeatureLevel9_2  FeatureLevel = 0x9200
	FeatureLevel9_3  FeatureLevel = 0x9300
	FeatureLevel10_0 FeatureLevel = 0xA000
	FeatureLevel10_1 FeatureLevel = 0xA100
	FeatureLevel11_0 FeatureLevel = 0xB000
	FeatureLevel11_1 FeatureLevel = 0xB100
)

// Major returns the major version encoded in the level.
func (l FeatureLevel) Major() int { return int(l >> 12) }

// Minor returns the minor version encoded in the level.
func (l FeatureLevel) Minor() int { return int(l>>8) & 0xF }

// String formats the level as "major_minor", e.g. FeatureLevel11_1 is
// "11_1".
func (l FeatureLevel) String() string {
	return fmt.Sprintf("%d_%d", l.Major(), l.Minor())
}
