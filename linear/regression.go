// Package linear provides an ordinary least squares regression model used
// as the concrete trainer in subset-selection examples and tests.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sokunmin/featselect/core/model"
	"github.com/sokunmin/featselect/pkg/errors"
)

// Regression is an ordinary least squares model fitted by the normal
// equation w = (XᵀX)⁻¹ Xᵀy.
type Regression struct {
	model.Base
	Weights   *mat.VecDense
	Intercept float64
	NFeatures int
}

// NewRegression creates an unfitted Regression.
func NewRegression() *Regression {
	return &Regression{}
}

// Fit trains the model on X (n×p) and y (n×1).
func (r *Regression) Fit(X, y mat.Matrix) error {
	rows, cols := X.Dims()
	ry, cy := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.Wrap(errors.ErrEmptyData, "Regression.Fit")
	}
	if ry != rows {
		return errors.NewDimensionError("Regression.Fit", rows, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("Regression.Fit", "y must be a column vector")
	}

	r.NFeatures = cols

	// prepend an all-ones column for the intercept
	XIntercept := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		XIntercept.Set(i, 0, 1.0)
		for j := 0; j < cols; j++ {
			XIntercept.Set(i, j+1, X.At(i, j))
		}
	}

	var XT mat.Dense
	XT.CloneFrom(XIntercept.T())

	var XTX mat.Dense
	XTX.Mul(&XT, XIntercept)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		return errors.Wrap(errors.ErrSingularMatrix, "Regression.Fit")
	}

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(&XT, yVec)

	weights := mat.NewVecDense(cols+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	r.Intercept = weights.AtVec(0)
	r.Weights = mat.NewVecDense(cols, nil)
	for i := 0; i < cols; i++ {
		r.Weights.SetVec(i, weights.AtVec(i + 1))
	}

	r.SetFitted()
	return nil
}

// Predict returns the model's predictions for X (n×p).
func (r *Regression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.NFeatures {
		return nil, errors.NewDimensionError("Regression.Predict", r.NFeatures, cols, 1)
	}

	predictions := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		sum := r.Intercept
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * r.Weights.AtVec(j)
		}
		predictions.SetVec(i, sum)
	}
	return predictions, nil
}
