package silhouette

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"silcount/pixel"
)

// CountSuite runs every scenario once per traversal strategy.
type CountSuite struct {
	suite.Suite
	strategy Strategy
}

func (s *CountSuite) count(g pixel.Grid, opts ...Option) Result {
	res, err := Count(g, append([]Option{WithStrategy(s.strategy)}, opts...)...)
	s.Require().NoError(err)
	return res
}

// TestUniform: 3×3 single color, everything is background.
func (s *CountSuite) TestUniform() {
	c := pixel.ARGB(255, 10, 20, 30)
	g, err := pixel.FromRows([][]pixel.Color{{c, c, c}, {c, c, c}, {c, c, c}})
	s.Require().NoError(err)

	res := s.count(g)
	s.Equal(c, res.Background)
	s.Zero(res.Count)
}

func centerBlock() *pixel.Image {
	fg := pixel.ARGB(255, 0, 0, 0)
	g := pixel.NewImage(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := white
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				c = fg
			}
			g.SetPixel(x, y, c)
		}
	}
	return g
}

// TestCenterBlock: 5×5 white border with a 3×3 block, default noise floor.
func (s *CountSuite) TestCenterBlock() {
	res := s.count(centerBlock(), WithNoiseFraction(0.001), WithRegions(true))
	s.Equal(white, res.Background)
	s.InDelta(0.025, res.MinRegionSize, 1e-12)
	s.Equal(1, res.Count)
	s.Require().Len(res.Regions, 1)
	s.Equal(9, res.Regions[0].Size)
	s.Equal(image.Pt(1, 1), res.Regions[0].Seed)
	s.True(res.Regions[0].Kept)
}

// TestCenterBlockFullFloor: the same grid needs 25 pixels per region.
func (s *CountSuite) TestCenterBlockFullFloor() {
	res := s.count(centerBlock(), WithNoiseFraction(1.0), WithRegions(true))
	s.InDelta(25.0, res.MinRegionSize, 1e-12)
	s.Zero(res.Count)
	s.Require().Len(res.Regions, 1)
	s.False(res.Regions[0].Kept)
}

// TestTwoBlocks: 10×10 with two disjoint 2×2 blocks.
func (s *CountSuite) TestTwoBlocks() {
	g := gridFromArt(s.T(),
		"..........",
		".##.......",
		".##.......",
		"..........",
		"..........",
		"..........",
		"......##..",
		"......##..",
		"..........",
		"..........",
	)
	s.Equal(2, s.count(g).Count)
}

// TestDiagonalBlocks: blocks sharing only a corner stay separate.
func (s *CountSuite) TestDiagonalBlocks() {
	g := gridFromArt(s.T(),
		"......",
		".##...",
		".##...",
		"...##.",
		"...##.",
		"......",
	)
	s.Equal(2, s.count(g).Count)
}

// TestThresholdExactlyAtFloor counts a region whose size equals the floor.
func (s *CountSuite) TestThresholdExactlyAtFloor() {
	g := gridFromArt(s.T(),
		"....",
		".#..",
		"..#.",
		"....",
	)
	// 16 × 0.0625 = 1.
	res := s.count(g, WithNoiseFraction(0.0625))
	s.Equal(2, res.Count)
}

// TestGarbageRegionsClaimed: small regions are dropped but still claimed.
func (s *CountSuite) TestGarbageRegionsClaimed() {
	g := gridFromArt(s.T(),
		"..........",
		".#....###.",
		"......###.",
		"..#...###.",
		"..........",
	)
	// 50 × 0.1 = 5: the two single pixels are noise, the 3×3 block counts.
	res := s.count(g, WithNoiseFraction(0.1), WithRegions(true), WithLabels(true))
	s.Equal(1, res.Count)
	s.Len(res.Regions, 3)
	s.Equal(11, res.Mask.Claimed())
	s.Equal(3, res.Mask.Regions())
}

// TestSinglePixelGrids covers 1×1, 1×N and N×1 inputs.
func (s *CountSuite) TestSinglePixelGrids() {
	s.Zero(s.count(gridFromArt(s.T(), "#")).Count)
	s.Zero(s.count(gridFromArt(s.T(), "....")).Count)
	s.Equal(1, s.count(gridFromArt(s.T(), ".#..")).Count)
	s.Equal(2, s.count(gridFromArt(s.T(), ".", "#", ".", "#", ".")).Count)
}

// TestBackgroundOverride fixes the background instead of estimating it.
func (s *CountSuite) TestBackgroundOverride() {
	g := gridFromArt(s.T(),
		"###",
		"###",
		"###",
	)
	s.Zero(s.count(g).Count)
	res := s.count(g, WithBackground(white), WithRegions(true))
	s.Equal(white, res.Background)
	s.Equal(1, res.Count)
	s.Require().Len(res.Regions, 1)
	s.Equal(9, res.Regions[0].Size)
}

func TestCountSuite(t *testing.T) {
	for _, st := range allStrategies {
		t.Run(st.String(), func(t *testing.T) {
			suite.Run(t, &CountSuite{strategy: st})
		})
	}
}

func TestCount_Errors(t *testing.T) {
	_, err := Count(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Count(&pixel.Image{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	g := centerBlock()
	cases := []struct {
		name string
		opt  Option
	}{
		{"NegativeNoise", WithNoiseFraction(-0.1)},
		{"NoiseAboveOne", WithNoiseFraction(1.5)},
		{"NaNNoise", WithNoiseFraction(nan())},
		{"NegativeThreshold", WithThreshold(-1)},
		{"HugeThreshold", WithThreshold(MaxThreshold + 1)},
		{"UnknownStrategy", WithStrategy(Strategy(42))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Count(g, tc.opt)
			assert.ErrorIs(t, err, ErrOptionViolation)
		})
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestCountSilhouettes(t *testing.T) {
	n, err := CountSilhouettes(centerBlock(), DefaultNoiseFraction)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = CountSilhouettes(centerBlock(), 2)
	assert.ErrorIs(t, err, ErrOptionViolation)
}

// TestCount_Deterministic repeats runs on the same random grid.
func TestCount_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(rng, 64, 48, 0.5)

	first, err := Count(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Count(g)
		require.NoError(t, err)
		assert.Equal(t, first.Count, again.Count)
	}
}

// TestCount_EachPixelOnce checks that every foreground pixel ends up in
// exactly one region and that region sizes add up to the foreground area.
func TestCount_EachPixelOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, st := range allStrategies {
		g := randomGrid(rng, 40, 40, 0.55)
		res, err := Count(g, WithStrategy(st), WithRegions(true), WithLabels(true), WithNoiseFraction(0))
		require.NoError(t, err)

		cl := Classifier{Background: res.Background, Threshold: DefaultThreshold}
		foreground := 0
		sizes := make(map[int32]int)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				fg := cl.IsForeground(g.Pixel(x, y))
				l := res.Mask.Label(x, y)
				require.Equal(t, fg, l != 0, "%s (%d,%d)", st, x, y)
				if fg {
					foreground++
					sizes[l]++
				}
			}
		}

		total := 0
		for _, r := range res.Regions {
			require.Equal(t, sizes[r.Label], r.Size, "%s region %d", st, r.Label)
			total += r.Size
		}
		assert.Equal(t, foreground, total, st.String())
		assert.Equal(t, len(res.Regions), res.Count, st.String())
	}
}

// TestCount_StrategiesAgree compares full runs across strategies.
func TestCount_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		g := randomGrid(rng, 25+rng.Intn(25), 25+rng.Intn(25), rng.Float64())
		want, err := Count(g, WithRegions(true))
		require.NoError(t, err)
		for _, st := range allStrategies[1:] {
			got, err := Count(g, WithStrategy(st), WithRegions(true))
			require.NoError(t, err)
			assert.Equal(t, want.Count, got.Count)
			assert.Equal(t, want.Regions, got.Regions)
		}
	}
}
