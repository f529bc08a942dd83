// Package metrics provides regression metrics and information-criterion
// scores used to rank models during subset selection. All criterion
// scores follow the library convention that lower is better.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sokunmin/featselect/pkg/errors"
)

// MSE computes the mean squared error between yTrue and yPred.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// R2Score computes the coefficient of determination.
// Returns a ValueError when yTrue is constant, since R² is undefined then.
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)

	var sse, sst float64
	for i := 0; i < n; i++ {
		resid := yTrue.AtVec(i) - yPred.AtVec(i)
		sse += resid * resid
		dev := yTrue.AtVec(i) - mean
		sst += dev * dev
	}
	if sst == 0 {
		return 0, errors.NewValueError("R2Score", "yTrue is constant, R2 is undefined")
	}
	return 1 - sse/sst, nil
}

// AdjustedR2Score computes R² adjusted for the number of predictors,
// negated so that lower is better like the other criterion scores.
// nPredictors is the number of predictor variables, excluding the
// intercept.
func AdjustedR2Score(yTrue, yPred *mat.VecDense, nPredictors int) (float64, error) {
	n := yTrue.Len()
	if n-nPredictors-1 <= 0 {
		return 0, errors.NewValidationError("nPredictors",
			"too many predictors for the number of observations", nPredictors)
	}
	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	adjusted := 1 - (1-r2)*float64(n-1)/float64(n-nPredictors-1)
	return -adjusted, nil
}

// AICScore computes the Akaike information criterion under a Gaussian
// likelihood:
//
//	AIC = n·ln(SSE/n) + n·(1 + ln 2π) + 2·(p + 1)
//
// where p = nParameters is the number of fitted coefficients including
// the intercept; the +1 accounts for the estimated error variance.
func AICScore(yTrue, yPred *mat.VecDense, nParameters int) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AICScore", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AICScore", n, yPred.Len(), 0)
	}
	if nParameters < 1 {
		return 0, errors.NewValidationError("nParameters", "must be at least 1", nParameters)
	}

	var sse float64
	for i := 0; i < n; i++ {
		resid := yTrue.AtVec(i) - yPred.AtVec(i)
		sse += resid * resid
	}

	fn := float64(n)
	constant := fn + fn*math.Log(2*math.Pi)
	return fn*math.Log(sse/fn) + constant + 2*float64(nParameters+1), nil
}

// BICScore computes the Bayesian information criterion, replacing AIC's
// 2·(p+1) penalty with ln(n)·(p+1).
func BICScore(yTrue, yPred *mat.VecDense, nParameters int) (float64, error) {
	aic, err := AICScore(yTrue, yPred, nParameters)
	if err != nil {
		return 0, err
	}
	fn := float64(yTrue.Len())
	penalty := float64(nParameters + 1)
	return aic - 2*penalty + math.Log(fn)*penalty, nil
}
