package erf

import (
	"math"

	"github.com/katalvlaran/lvlmath/numkit"
)

// Inverse-erf rational approximations, domain-split on p and on
// x = sqrt(−log(q)). Tables transcribed verbatim from the published
// 53-bit fits.

// p <= 0.5, argument p.
const inv0Y = 0.0891314744949340820313

var (
	inv0P = []float64{
		-0.000508781949658280665617,
		-0.00836874819741736770379,
		0.0334806625409744615033,
		-0.0126926147662974029034,
		-0.0365637971411762664006,
		0.0219878681111168899165,
		0.00822687874676915743155,
		-0.00538772965071242932965,
	}
	inv0Q = []float64{
		1.0,
		-0.970005043303290640362,
		-1.56574558234175846809,
		1.56221558398423026363,
		0.662328840472002992063,
		-0.71228902341542847553,
		-0.0527396382340099713954,
		0.0795283687341571680018,
		-0.00233393759374190016776,
		0.000886216390456424707504,
	}
)

// q in [0.25, 0.5], argument q − 0.25.
const inv1Y = 2.249481201171875

var (
	inv1P = []float64{
		-0.202433508355938759655,
		0.105264680699391713268,
		8.37050328343119927838,
		17.6447298408374015486,
		-18.8510648058714251895,
		-44.6382324441786960818,
		17.445385985570866523,
		21.1294655448340526258,
		-3.67192254707729348546,
	}
	inv1Q = []float64{
		1.0,
		6.24264124854247537712,
		3.9713437953343869095,
		-28.6608180499800029974,
		-20.1432634680485188801,
		48.5609213108739935468,
		10.8268667355460159008,
		-22.6436933413139721736,
		1.72114765761200282724,
	}
)

// x = sqrt(−log q) < 3, argument x − 1.125.
const inv2Y = 0.807220458984375

var (
	inv2P = []float64{
		-0.131102781679951906451,
		-0.163794047193317060787,
		0.117030156341995252019,
		0.387079738972604337464,
		0.337785538912035898924,
		0.142869534408157156766,
		0.0290157910005329060432,
		0.00214558995388805277169,
		-0.679465575181126350155e-6,
		0.285225331782217055858e-7,
		-0.681149956853776992068e-9,
	}
	inv2Q = []float64{
		1.0,
		3.46625407242567245975,
		5.38168345707006855425,
		4.77846592945843778382,
		2.59301921623620271374,
		0.848854343457902036425,
		0.152264338295331783612,
		0.01105924229346489121,
	}
)

// x in [3, 6), argument x − 3.
const inv3Y = 0.93995571136474609375

var (
	inv3P = []float64{
		-0.0350353787183177984712,
		-0.00222426529213447927281,
		0.0185573306514231072324,
		0.00950804701325919603619,
		0.00187123492819559223345,
		0.000157544617424960554631,
		0.460469890584317994083e-5,
		-0.230404776911882601748e-9,
		0.266339227425782031962e-11,
	}
	inv3Q = []float64{
		1.0,
		1.3653349817554063097,
		0.762059164553623404043,
		0.220091105764131249824,
		0.0341589143670947727934,
		0.00263861676657015992959,
		0.764675292302794483503e-4,
	}
)

// x in [6, 18), argument x − 6.
const inv4Y = 0.98362827301025390625

var (
	inv4P = []float64{
		-0.0167431005076633737133,
		-0.00112951438745580278863,
		0.00105628862152492910091,
		0.000209386317487588078668,
		0.149624783758342370182e-4,
		0.449696789927706453732e-6,
		0.462596163522878599135e-8,
		-0.281128735628831791805e-13,
		0.99055709973310326855e-16,
	}
	inv4Q = []float64{
		1.0,
		0.591429344886417493481,
		0.138151865749083321638,
		0.0160746087093676504695,
		0.000964011807005165528527,
		0.275335474764726041141e-4,
		0.282243172016108031869e-6,
	}
)

// x in [18, 44), argument x − 18.
const inv5Y = 0.99714565277099609375

var (
	inv5P = []float64{
		-0.0024978212791898131227,
		-0.779190719229053954292e-5,
		0.254723037413027451751e-4,
		0.162397777342510920873e-5,
		0.396341011304801168516e-7,
		0.411632831190944208473e-9,
		0.145596286718675035587e-11,
		-0.116765012397184275695e-17,
	}
	inv5Q = []float64{
		1.0,
		0.207123112214422517181,
		0.0169410838120975906478,
		0.000690538265622684595676,
		0.145007359818232637924e-4,
		0.144437756628144157666e-6,
		0.509761276599778486139e-9,
	}
)

// x >= 44, argument x − 44.
const inv6Y = 0.99941349029541015625

var (
	inv6P = []float64{
		-0.000539042911019078575891,
		-0.28398759004727721098e-6,
		0.899465114892291446442e-6,
		0.229345859265920864296e-7,
		0.225561444863500149219e-9,
		0.947846627503022684216e-12,
		0.135880130108924861008e-14,
		-0.348890393399948882918e-21,
	}
	inv6Q = []float64{
		1.0,
		0.0845746234001899436914,
		0.00282092984726264681981,
		0.468292921940894236786e-4,
		0.399968812193862100054e-6,
		0.161809290887904476097e-8,
		0.231558608310259605225e-11,
	}
)

// ErfInv returns the inverse error function: the x with erf(x) == p.
// Out-of-domain p (|p| > 1) yields NaN; p = ±1 yields ±Inf.
func ErfInv(p float64) float64 {
	if math.IsNaN(p) || p < -1 || p > 1 {
		return math.NaN()
	}
	if p == 1 {
		return math.Inf(1)
	}
	if p == -1 {
		return math.Inf(-1)
	}
	if p == 0 {
		return 0
	}

	if p < 0 {
		return -erfInvImp(-p, 1+p)
	}

	return erfInvImp(p, 1-p)
}

// ErfcInv returns the inverse complementary error function: the x with
// erfc(x) == q, for q in [0, 2]. q = 0 yields +Inf, q = 2 yields −Inf,
// anything outside [0, 2] yields NaN.
func ErfcInv(q float64) float64 {
	if math.IsNaN(q) || q < 0 || q > 2 {
		return math.NaN()
	}
	if q == 0 {
		return math.Inf(1)
	}
	if q == 2 {
		return math.Inf(-1)
	}

	if q > 1 {
		return -erfInvImp(q-1, 2-q)
	}

	return erfInvImp(1-q, q)
}

// erfInvImp evaluates the inverse for p in (0, 1) with q = 1 − p
// supplied exactly by the caller (it matters near p = 1).
func erfInvImp(p, q float64) float64 {
	if p <= 0.5 {
		g := p * (p + 10)

		return g*inv0Y + g*numkit.EvaluateRational(inv0P, inv0Q, p)
	}

	if q >= 0.25 {
		g := math.Sqrt(-2 * math.Log(q))

		return g / (inv1Y + numkit.EvaluateRational(inv1P, inv1Q, q-0.25))
	}

	x := math.Sqrt(-math.Log(q))
	var y float64
	var r float64
	switch {
	case x < 3:
		y = inv2Y
		r = numkit.EvaluateRational(inv2P, inv2Q, x-1.125)
	case x < 6:
		y = inv3Y
		r = numkit.EvaluateRational(inv3P, inv3Q, x-3)
	case x < 18:
		y = inv4Y
		r = numkit.EvaluateRational(inv4P, inv4Q, x-6)
	case x < 44:
		y = inv5Y
		r = numkit.EvaluateRational(inv5P, inv5Q, x-18)
	default:
		y = inv6Y
		r = numkit.EvaluateRational(inv6P, inv6Q, x-44)
	}

	return y*x + r*x
}
