package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/sokunmin/featselect/pkg/errors"
)

func TestRegressionRecoversCoefficients(t *testing.T) {
	// y = 3 + 2*x1 - x2, noiseless
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 0,
		3, 2,
		4, 1,
		5, 3,
	})
	y := mat.NewDense(5, 1, []float64{4, 7, 7, 10, 10})

	reg := NewRegression()
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	if math.Abs(reg.Intercept-3.0) > 1e-9 {
		t.Errorf("Intercept = %v, want 3.0", reg.Intercept)
	}
	if math.Abs(reg.Weights.AtVec(0)-2.0) > 1e-9 {
		t.Errorf("Weights[0] = %v, want 2.0", reg.Weights.AtVec(0))
	}
	if math.Abs(reg.Weights.AtVec(1)+1.0) > 1e-9 {
		t.Errorf("Weights[1] = %v, want -1.0", reg.Weights.AtVec(1))
	}

	preds, err := reg.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		if math.Abs(preds.AtVec(i)-y.At(i, 0)) > 1e-9 {
			t.Errorf("prediction %d = %v, want %v", i, preds.AtVec(i), y.At(i, 0))
		}
	}
}

func TestRegressionNotFitted(t *testing.T) {
	reg := NewRegression()

	_, err := reg.Predict(mat.NewDense(1, 1, []float64{1}))
	if err == nil {
		t.Fatal("expected error from Predict() before Fit()")
	}

	var nfErr *errors.NotFittedError
	if !errors.As(err, &nfErr) {
		t.Errorf("error = %v, want *NotFittedError", err)
	}
}

func TestRegressionValidation(t *testing.T) {
	reg := NewRegression()

	t.Run("empty X", func(t *testing.T) {
		if err := reg.Fit(&mat.Dense{}, mat.NewDense(1, 1, []float64{1})); err == nil {
			t.Error("expected error for empty X")
		}
	})

	t.Run("row mismatch", func(t *testing.T) {
		X := mat.NewDense(3, 1, []float64{1, 2, 3})
		y := mat.NewDense(2, 1, []float64{1, 2})
		if err := reg.Fit(X, y); err == nil {
			t.Error("expected error for mismatched rows")
		}
	})

	t.Run("wide y", func(t *testing.T) {
		X := mat.NewDense(2, 1, []float64{1, 2})
		y := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		if err := reg.Fit(X, y); err == nil {
			t.Error("expected error for non-column y")
		}
	})

	t.Run("feature mismatch on predict", func(t *testing.T) {
		X := mat.NewDense(3, 1, []float64{1, 2, 3})
		y := mat.NewDense(3, 1, []float64{2, 4, 6})
		fitted := NewRegression()
		if err := fitted.Fit(X, y); err != nil {
			t.Fatalf("Fit() error: %v", err)
		}
		if _, err := fitted.Predict(mat.NewDense(1, 2, []float64{1, 2})); err == nil {
			t.Error("expected error for wrong feature count")
		}
	})
}
