// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linear

import "math"

// Compare finds an optimal path from (0,0) to (len(x),len(y)) and marks all deletions in rx and
// all insertions in ry. It returns the edit distance.
//
// xidx and yidx map indices of x and y to indices of rx and ry, nil means identity. This allows
// callers to compare a reduced problem and to record the result for the original one.
//
// If limit is non-negative and the edit distance exceeds it, Compare returns false. In that case,
// rx and ry are left untouched.
func Compare[T any](rx, ry []bool, x, y []T, xidx, yidx []int, eq func(a, b T) bool, limit int) (int, bool) {
	var m myers[T]
	m.init(x, y, eq)
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	return m.compare(0, len(x), 0, len(y), limit)
}

// Distance returns the edit distance between x and y without computing the path.
//
// If limit is non-negative and the edit distance exceeds it, Distance returns false.
func Distance[T any](x, y []T, eq func(a, b T) bool, limit int) (int, bool) {
	var m myers[T]
	smin, smax, tmin, tmax := m.init(x, y, eq)
	d := 0
	switch {
	case smin == smax:
		d = tmax - tmin
	case tmin == tmax:
		d = smax - smin
	default:
		// The first middle snake decides the distance.
		var ok bool
		if _, _, _, _, d, ok = m.split(smin, smax, tmin, tmax, limit); !ok {
			return 0, false
		}
	}
	if limit >= 0 && d > limit {
		return 0, false
	}
	return d, true
}

type myers[T any] struct {
	// Inputs to compare.
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to k0 = v0+k in [0, 2*d]. The endpoints only store the s-coordinate
	// since t = s - k.
	vf, vb []int
	v0     int

	// Mapping of s, t indices to locations in the result vectors, nil for identity.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, smax, tmin, tmax = Bounds(x, y, 0, len(x), 0, len(y), eq)

	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x, m.y, m.eq = x, y, eq
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1 // +1 for the middle point
	return
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax), marks its deletions and
// insertions and returns d.
func (m *myers[T]) compare(smin, smax, tmin, tmax int, limit int) (int, bool) {
	smin, smax, tmin, tmax = Bounds(m.x, m.y, smin, smax, tmin, tmax, m.eq)

	switch {
	case smin == smax:
		// s is empty, therefore everything in tmin to tmax is an insertion.
		if limit >= 0 && tmax-tmin > limit {
			return 0, false
		}
		for t := tmin; t < tmax; t++ {
			m.ry[m.yindex(t)] = true
		}
		return tmax - tmin, true
	case tmin == tmax:
		// t is empty, therefore everything in smin to smax is a deletion.
		if limit >= 0 && smax-smin > limit {
			return 0, false
		}
		for s := smin; s < smax; s++ {
			m.rx[m.xindex(s)] = true
		}
		return smax - smin, true
	}

	// Use split to divide the input into three pieces:
	//
	//   (1) A, possibly empty, rect (smin, tmin) to (s0, t0)
	//   (2) A, possibly empty, sequence of diagonals (matches) (s0, t0) to (s1, t1)
	//   (3) A, possibly empty, rect (s1, t1) to (smax, tmax)
	//
	// The middle snake lies on an optimal path, the distances of (1) and (3) add up to d. Only the
	// split of the whole problem needs to check the limit.
	s0, s1, t0, t1, d, ok := m.split(smin, smax, tmin, tmax, limit)
	if !ok {
		return 0, false
	}
	d0, _ := m.compare(smin, s0, tmin, t0, -1)
	d1, _ := m.compare(s1, smax, t1, tmax, -1)
	if d0+d1 != d {
		panic("never reached")
	}
	return d, true
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax) and the length d of that path.
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int, limit int) (s0, s1, t0, t1, d int, ok bool) {
	N, M := smax-smin, tmax-tmin
	x, y, eq := m.x, m.y, m.eq
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, we can determine the min and max for k using: k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// Both searches number their diagonals consistently by centering around different midpoints.
	// This way, we don't need to convert k's when checking for overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of an optimal path is odd or even as (N-M) is odd or even.
	odd := (N-M)%2 != 0

	// Without a common prefix or suffix there is no 0-path and the d=0 iteration would result in
	// the following trivial result:
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// We know from Lemma 3 that there's a d-path with d = ⌈(N + M)/2⌉. Therefore, we can omit the
	// loop condition and instead blindly increment d.
	for d := 1; ; d++ {
		// The shortest path this round can still find.
		if shortest := 2*d - b2i(odd); limit >= 0 && shortest > limit {
			return 0, 0, 0, 0, 0, false
		}

		// Forwards iteration.
		//
		// Instead of searching k in [fmid-d, fmid+d], k is bounded to diagonals that intersect the
		// edit grid. Since we're searching in steps of 2, this requires changing the min and max
		// for k when outside the boundary. The sentinels outside of [fmin, fmax] let the k-loop
		// handle the top and left hand border like any other value.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0 // k as an index into vf

			// Either extend the furthest reaching (d-1)-path on k+1 by a vertical edge or the one
			// on k-1 by a horizontal edge. Ties prioritize deletions over insertions.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, 2*d - 1, true
			}
		}

		// Backwards iteration.
		//
		// This is mostly analogous to the forward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0, 2 * d, true
			}
		}
	}
}

func (m *myers[T]) xindex(s int) int {
	if m.xidx == nil {
		return s
	}
	return m.xidx[s]
}

func (m *myers[T]) yindex(t int) int {
	if m.yidx == nil {
		return t
	}
	return m.yidx[t]
}

// Bounds strips the common prefix and suffix of x[smin:smax] and y[tmin:tmax] and returns the
// bounds of the remaining ranges.
func Bounds[T any](x, y []T, smin, smax, tmin, tmax int, eq func(a, b T) bool) (int, int, int, int) {
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}
	return smin, smax, tmin, tmax
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
