// Copyright 2025 go-highway Authors
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

package math

// =============================================================================
// Constants for the logarithm family
// =============================================================================
//
// Polynomial tables are ordered lowest degree first and are evaluated in
// the square of the reduced argument x = (m-1)/(m+1). None of them is ever
// written after initialization.

// Double-double constants, float64
var (
	ln2Hi_f64 float64 = 0.6931471805599453
	ln2Lo_f64 float64 = 2.3190468138462996e-17

	log2eHi_f64 float64 = 1.4426950408889634
	log2eLo_f64 float64 = 2.0355273740931033e-17

	log10eHi_f64 float64 = 0.4342944819032518
	log10eLo_f64 float64 = 1.098319650216765e-17
)

// Double-double constants, float32
var (
	ln2Hi_f32 float32 = 0.6931471824645996
	ln2Lo_f32 float32 = -1.9046542121259336e-09

	log2eHi_f32 float32 = 1.4426950216293335
	log2eLo_f32 float32 = 1.925963033500011e-08

	log10eHi_f32 float32 = 0.4342944920063019
	log10eLo_f32 float32 = -1.0103049952192578e-08
)

// Smallest positive normal values; smaller inputs are rescaled by 2^64
// before their exponent field is read.
var (
	minNormal_f64 float64 = 0x1p-1022
	minNormal_f32 float32 = 0x1p-126
)

// log1p overflow thresholds: larger arguments return +Inf.
var (
	log1pMax_f64 float64 = 1e307
	log1pMax_f32 float32 = 1e38

	// Below these magnitudes log1p(a) rounds to a.
	log1pTiny_f64 float64 = 0x1p-54
	log1pTiny_f32 float32 = 0x1p-25
)

// logAccurateF64 is the kernel of the accurate float64 log in x²; the full
// expansion is ln(m) = e·ln2 + 2x + x³·P(x²).
var logAccurateF64 = [7]float64{
	0.6666666666667333541,
	0.3999999999635251990,
	0.2857142932794299317,
	0.2222214519839380009,
	0.1818605932937785996,
	0.1525629051003428716,
	0.1532076988502701353,
}

// logAccurateF32 is the float32 counterpart of logAccurateF64.
var logAccurateF32 = [3]float32{
	0.666669488,
	0.399610817432403564453125,
	0.302729487419128417968750,
}

// logk2F64 is the kernel used by log1p on a double-double argument.
var logk2F64 = [8]float64{
	0.666666666666664853302393,
	0.400000000000914013309483,
	0.285714285511134091777308,
	0.22222224632662035403996,
	0.181816523941564611721589,
	0.153914168346271945653214,
	0.131699838841615374240845,
	0.13860436390467167910856,
}

// logk2F32 is the float32 counterpart of logk2F64.
var logk2F32 = [4]float32{
	0.666666686534881591796875,
	0.400005877017974853515625,
	0.28518211841583251953125,
	0.2392828464508056640625,
}

// logFastF64 holds the fast-path polynomials P_base with
// log_base(m) ≈ x·P_base(x²), one row per Base. The base-2 and base-10 rows
// are the natural row scaled by log2(e) and log10(e).
var logFastF64 = [numBases][8]float64{
	BaseE: {
		2.0,
		0.6666666666667778740063,
		0.399999999950799600689777,
		0.285714294746548025383248,
		0.222221366518767365905163,
		0.181863266251982985677316,
		0.152519917006351951593857,
		0.153487338491425068243146,
	},
	Base2: {
		2.8853900817779268,
		0.9617966939261361,
		0.5770780162846042,
		0.41219859614193244,
		0.3205976634561944,
		0.26237323234160503,
		0.22003972790186024,
		0.22143542208082465,
	},
	Base10: {
		0.8685889638065036,
		0.2895296546022162,
		0.17371779273993326,
		0.12408414160930506,
		0.09650951324010071,
		0.07898221299413809,
		0.06623855833620058,
		0.0666587041488425,
	},
}

// logFastF32 is the float32 counterpart of logFastF64.
var logFastF32 = [numBases][5]float32{
	BaseE: {
		2.0,
		0.666666686534881591796875,
		0.400005877017974853515625,
		0.28518211841583251953125,
		0.2392828464508056640625,
	},
	Base2: {
		2.885390043258667,
		0.9617967009544373,
		0.5770865082740784,
		0.41143083572387695,
		0.3452121615409851,
	},
	Base10: {
		0.8685889840126038,
		0.2895296514034271,
		0.1737203449010849,
		0.12385302037000656,
		0.10391922295093536,
	},
}

// invLog2F64 is log_base(2), the weight of the exponent in the fast path.
var invLog2F64 = [numBases]float64{
	BaseE:  0.6931471805599453,
	Base2:  1,
	Base10: 0.3010299956639812,
}

// invLog2F32 is the float32 counterpart of invLog2F64.
var invLog2F32 = [numBases]float32{
	BaseE:  0.6931471824645996,
	Base2:  1,
	Base10: 0.3010300099849701,
}
