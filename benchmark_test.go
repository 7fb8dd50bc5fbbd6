package snowid

import (
	"testing"
)

func BenchmarkNextID(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = NextID()
		}
	})
}

func BenchmarkGenerator_NextID(b *testing.B) {
	gen, err := NewGeneratorWithWorkerID(1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gen.NextID()
		}
	})
}

func BenchmarkGenerator_NextID_Sequential(b *testing.B) {
	gen, err := NewGeneratorWithWorkerID(1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gen.NextID()
	}
}

func BenchmarkID_String(b *testing.B) {
	id := NextID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := NextID().String()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkID_Components(b *testing.B) {
	id := NextID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id.WorkerID()
		_ = id.Timestamp()
		_ = id.Sequence()
	}
}

func BenchmarkID_EncodeToHex(b *testing.B) {
	id := NextID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id.EncodeToHex()
	}
}

func BenchmarkID_EncodeToBase64(b *testing.B) {
	id := NextID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = id.EncodeToBase64()
	}
}

func BenchmarkID_MarshalText(b *testing.B) {
	id := NextID()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := id.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}
