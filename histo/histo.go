/*
 * histo.go, part of apbs-etl.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 * Copyright 2026 The apbs-etl Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package histo builds histograms of the values on a grid, or of any other set of numbers.
package histo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. The bin i contains the values v such
//that dividers[i] <= v < dividers[i+1].
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//Uniform returns n+1 dividers for n bins of equal width between min and max.
//The last divider is slightly larger than max, so max itself is counted.
//If max is not larger than min, the bins span one unit from min.
func Uniform(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if max <= min {
		max = min + 1
	}
	d := floats.Span(make([]float64, n+1), min, max)
	d[n] = math.Nextafter(max, math.Inf(1))
	return d
}

//FromValues returns a histogram of values with n bins of equal width spanning
//all the values. values is not modified.
func FromValues(values []float64, n int) *Data {
	if len(values) == 0 {
		return NewData(Uniform(0, 1, n), nil)
	}
	return NewData(Uniform(floats.Min(values), floats.Max(values), n), values)
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 2 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//Returns a new histogram from the dividers and rawdata given
//rawdata can be nil. In that case, an empty histogram is created.
//Neither slice is modified or kept.
func NewData(dividers []float64, rawdata []float64) *Data {
	d := new(Data)
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	return d
}

//Adds the given data point(s) to the histogram
func (M *Data) AddData(point ...float64) {
	var norma bool
	if M.normalized {
		norma = true
		M.UnNormalize()
	}
	for _, v := range point {
		for j, w := range M.dividers {
			//Values that are larger than the last divider are just omitted.
			if j == len(M.dividers)-1 {
				break
			}
			if w <= v && v < M.dividers[j+1] {
				M.histo[j]++
				break
			}
		}
	}
	M.total += len(point)
	//if it was normalized, we should return it to that state
	if norma {
		M.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of data points given to the histogram, including
//those that fell outside the dividers.
func (D *Data) Total() int {
	return D.total
}

//Copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

//Copy returns a copy of the bin counts.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the bin counts. Changes to the slice will affect the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with those obtained from
//rawdata with the given dividers.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	total := len(rawdata)
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	D.dividers = append(D.dividers[:0], dividers...)
	D.normalized = false
	D.total = total
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}
