package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/fixedbytes"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	b := fixedbytes.FromInteger(16, uint64(0xdeadbeefcafe))
	mask := fixedbytes.FromSlice(16, []byte{0xff, 0x0f, 0xf0})
	for i := 0; i < 10000; i++ {
		r := b.ShiftLeft(i % b.BitSize()).Xor(mask)
		r = r.RotateRight(13).Or(b.ShiftRight(5))
		_ = fixedbytes.ToInteger[uint64](r)
		_ = r.Hex()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
