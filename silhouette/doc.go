// Package silhouette counts the distinct foreground shapes of a raster image.
//
// What:
//
//   - EstimateBackground picks the most frequent color on the image border.
//   - Classifier marks a pixel as background when every channel (A, R, G, B)
//     is closer to the background than Threshold, foreground otherwise.
//   - A Strategy floods one 4-connected foreground region from a seed and
//     reports its size: BreadthFirst (FIFO work list), DepthFirst (recursive)
//     or StackDepthFirst (LIFO work list). All three return the same sizes.
//   - Count scans the image, floods every unvisited foreground pixel and keeps
//     the regions covering at least NoiseFraction of the image area.
//
// Complexity:
//
//   - EstimateBackground: O(W+H), Memory: O(distinct border colors).
//   - Count:              O(W×H), Memory: O(W×H) for the visited mask plus
//     the traversal work list (or call stack for DepthFirst).
//
// Options:
//
//   - WithNoiseFraction: minimum region area as a fraction of W×H (default 0.001).
//   - WithThreshold:     per-channel closeness bound (default 100).
//   - WithStrategy:      traversal strategy (default BreadthFirst).
//   - WithBackground:    skip estimation and use the given background.
//   - WithRegions / WithLabels: keep per-region sizes and the label mask.
//
// Errors:
//
//   - ErrInvalidInput:    nil grid, zero width or zero height.
//   - ErrOptionViolation: noise fraction outside [0,1], threshold outside
//     [0,256] or an unknown strategy.
package silhouette
