package hwy

import "math"

// This file provides type conversions. ConvertTo* change the numeric value's
// representation; BitCast* keep the exact bit pattern and only change how it
// is interpreted.

// ConvertToFloat32 converts int32 or int64 to float32 (round to nearest).
// Large values may lose precision.
func ConvertToFloat32[T ~int32 | ~int64](v Vec[T]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = float32(v.data[i])
	}
	return Vec[float32]{data: result}
}

// ConvertToFloat64 converts int32 or int64 to float64.
// int64 values beyond 2^53 may lose precision.
func ConvertToFloat64[T ~int32 | ~int64](v Vec[T]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = float64(v.data[i])
	}
	return Vec[float64]{data: result}
}

// BitCastF32ToI32 reinterprets float32 bits as int32 without conversion.
// This is a bitwise reinterpretation, not a numeric conversion.
func BitCastF32ToI32(v Vec[float32]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int32(math.Float32bits(v.data[i]))
	}
	return Vec[int32]{data: result}
}

// BitCastI32ToF32 reinterprets int32 bits as float32 without conversion.
// This is a bitwise reinterpretation, not a numeric conversion.
func BitCastI32ToF32(v Vec[int32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = math.Float32frombits(uint32(v.data[i]))
	}
	return Vec[float32]{data: result}
}

// BitCastF64ToI64 reinterprets float64 bits as int64 without conversion.
// This is a bitwise reinterpretation, not a numeric conversion.
func BitCastF64ToI64(v Vec[float64]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = int64(math.Float64bits(v.data[i]))
	}
	return Vec[int64]{data: result}
}

// BitCastI64ToF64 reinterprets int64 bits as float64 without conversion.
// This is a bitwise reinterpretation, not a numeric conversion.
func BitCastI64ToF64(v Vec[int64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = math.Float64frombits(uint64(v.data[i]))
	}
	return Vec[float64]{data: result}
}
