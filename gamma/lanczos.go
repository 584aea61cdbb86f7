package gamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/numkit"
)

// 13-term Lanczos approximation, optimal for 53-bit floats. The shift
// constant g and both coefficient tables are transcribed verbatim; the
// ratio lanczosNum/lanczosDenom tends to sqrt(2π) as z grows.
const lanczosG = 6.024680040776729583740234375

var lanczosNum = []float64{
	23531376880.410759688572007674451636754734846804940,
	42919803642.649098768957899047001988850926355848959,
	35711959237.355668049440185451547166705960488635843,
	17921034426.037209699919755754458931112671403265390,
	6039542586.3520280050642916443320840233385927225995,
	1439720407.3117216736632230727949123939715485786772,
	248874557.86205415651146038641322942321632125127801,
	31426415.585400194380614231628318205362874684987640,
	2876370.6289353724412254090516208496135991145378768,
	186056.26539522349504029498971604569928220784236328,
	8071.6720023658162106380029022722506138218516325024,
	210.82427775157934587250973392071336271166969580291,
	2.5066282746310002701649081771338373386264310793408,
}

var lanczosDenom = []float64{
	0,
	39916800,
	120543840,
	150917976,
	105258076,
	45995730,
	13339535,
	2637558,
	357423,
	32670,
	1925,
	66,
	1,
}

// Numerator divided through by exp(g), for prefix computations that
// would otherwise need an explicit exp(g) factor next to a large power.
// Built once at init; the uniform 1-ulp scaling error cancels in the
// ratios these coefficients feed.
var lanczosNumExpGScaled = make([]float64, len(lanczosNum))

func init() {
	expG := math.Exp(lanczosG)
	for i, c := range lanczosNum {
		lanczosNumExpGScaled[i] = c / expG
	}
}

// LanczosG is the shift constant of the Lanczos approximation; exposed
// with the scaled sum so the beta package can assemble its own power
// prefixes from the same pieces.
const LanczosG = lanczosG

// lanczosSum evaluates the Lanczos series at z. Γ(z) is then
// (z+g−0.5)^(z−0.5) · e^(−(z+g−0.5)) · lanczosSum(z) for z > 0.
func lanczosSum(z float64) float64 {
	return numkit.EvaluateRational(lanczosNum, lanczosDenom, z)
}

// LanczosSumExpGScaled is the Lanczos series divided by exp(g). Prefix
// code folds the division into a power term to dodge premature
// overflow.
func LanczosSumExpGScaled(z float64) float64 {
	return numkit.EvaluateRational(lanczosNumExpGScaled, lanczosDenom, z)
}
