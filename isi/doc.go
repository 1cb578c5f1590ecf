// Package isi measures residual inter-symbol interference of pulse-shaping
// filters.
//
// The metric models a matched-filter pair: the filter's autocorrelation is
// sampled at symbol-spaced lags, and any energy at non-zero lags is
// interference that leaks into neighboring symbol periods. Evaluate reports
// both the root-mean-square and the peak of these normalized lag terms.
package isi
