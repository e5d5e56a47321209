package collate

import (
	_ "embed"

	"github.com/go-uca/uca/internal/colltab"
)

//go:embed testdata/allkeys-5.2.0.txt
var ducet520 []byte

//go:embed testdata/allkeys-6.3.0.txt
var ducet630 []byte

//go:embed testdata/allkeys-8.0.0.txt
var ducet800 []byte

//go:embed testdata/allkeys-9.0.0.txt
var ducet900 []byte

//go:embed testdata/allkeys-10.0.0.txt
var ducet1000 []byte

type variant struct {
	version string
	ducet   []byte
	config  colltab.VariantConfig
}

var (
	variant520  = variant{"5.2.0", ducet520, colltab.Config520}
	variant630  = variant{"6.3.0", ducet630, colltab.Config630}
	variant800  = variant{"8.0.0", ducet800, colltab.Config800}
	variant900  = variant{"9.0.0", ducet900, colltab.Config900}
	variant1000 = variant{"10.0.0", ducet1000, colltab.Config1000}
)

// defaultVariant is a packaging decision, not a core algorithm decision:
// New always uses the 9.0.0 table rather than probing a host character
// database version at load time. A deployer pinned to an older Unicode
// Character Database should call New8_0_0 or New6_3_0 explicitly instead
// of relying on New.
var defaultVariant = variant900
