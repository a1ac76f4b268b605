// SPDX-License-Identifier: MIT

// Package matrix: perspective-projection builder.
// The one domain-specific fixed-output constructor of the algorithm
// layer; pure arithmetic with no shared row-reduction logic.

package matrix

import "math"

// projectionSize is the shape of a homogeneous 3D projection matrix.
const projectionSize = 4

// Projection returns the standard 4×4 perspective-projection matrix for
// a vertical field of view fov (radians), width/height aspect ratio, and
// near/far clipping planes:
//
//	[ 1/(ratio·tan(fov/2))  0               0                 0                    ]
//	[ 0                     1/tan(fov/2)    0                 0                    ]
//	[ 0                     0               −(far+near)/(far−near)  −2·far·near/(far−near) ]
//	[ 0                     0               −1                0                    ]
//
// The caller is responsible for meaningful inputs (0 < near < far,
// ratio > 0, 0 < fov < π); degenerate values propagate as ±Inf/NaN the
// way plain float arithmetic does.
// Complexity: O(1).
func Projection(fov, ratio, near, far float64) *Matrix[float64] {
	halfTan := math.Tan(fov / 2)
	depth := far - near

	return &Matrix[float64]{
		rows: projectionSize,
		cols: projectionSize,
		data: []float64{
			1 / (ratio * halfTan), 0, 0, 0,
			0, 1 / halfTan, 0, 0,
			0, 0, -(far + near) / depth, -(2 * far * near) / depth,
			0, 0, -1, 0,
		},
	}
}
