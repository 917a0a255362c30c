//go:build seedot_saturate

package fixed

// Narrowing is the narrowing mode compiled into this build.
const Narrowing = Saturate
