//go:build !seedot_fastapprox

package fixed

// Activation is the activation path compiled into this build.
const Activation = FloatPath
