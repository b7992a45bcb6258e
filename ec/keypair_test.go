//版权所有（c）2013-2017 BTCSuite开发者
//此源代码的使用由ISC控制
//可以在许可文件中找到的许可证。

package ec

import (
	"errors"
	"strings"
	"testing"

	"github.com/pyperwallet/pyperwallet/bytedata"
)

const (
	testPriv = "3c5f262f56af74a2c314354be7ea0ccafeda1c059e2b5b3b4c3151912c774f78"
	testPubC = "02ff136594f723f047a0917a8ec66b56079841ac989fb4f6ac75982fc7f57e980a"
	testPubU = "04ff136594f723f047a0917a8ec66b56079841ac989fb4f6ac75982fc7f57e980a" +
		"54f713effb9ecd9beadb8cbbadc613e5927b8d786cdd274d194f62d4d20583c0"
)

func hexData(t *testing.T, s string) bytedata.Data {
	t.Helper()
	d, err := bytedata.FromHex(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return d
}

func TestFromPrivate(t *testing.T) {
	kp, err := FromPrivate(Secp256k1, hexData(t, testPriv))
	if err != nil {
		t.Fatalf("FromPrivate: %v", err)
	}
	priv, ok := kp.Priv()
	if !ok || priv.Hex() != testPriv {
		t.Errorf("Priv: got %v %v", priv, ok)
	}
	if pub, _ := kp.Pub(true); pub.Hex() != testPubC {
		t.Errorf("compressed pub\ngot: %s\nwant: %s", pub.Hex(), testPubC)
	}
	if pub, _ := kp.Pub(false); pub.Hex() != testPubU {
		t.Errorf("uncompressed pub\ngot: %s\nwant: %s", pub.Hex(), testPubU)
	}
}

func TestFromPrivateInvalid(t *testing.T) {
	tests := []string{
		"",
		"00",
		strings.Repeat("00", 32),
		// 群的阶N本身不是有效私钥。
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		testPriv + "00",
	}
	for i, s := range tests {
		_, err := FromPrivate(Secp256k1, hexData(t, s))
		if !errors.Is(err, ErrInvalidPrivateKey) {
			t.Errorf("#%d: got %v, want ErrInvalidPrivateKey", i, err)
		}
	}
}

// TestGenerate检查生成的密钥对自洽且私钥无前导零字节。
func TestGenerate(t *testing.T) {
	for i := 0; i < 50; i++ {
		kp, err := Generate(Secp256k1)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		priv, ok := kp.Priv()
		if !ok || priv.Len() != 32 {
			t.Fatalf("bad private key length %d", priv.Len())
		}
		if priv.At(0) == 0 {
			t.Fatalf("generated private key with leading zero byte")
		}
		again, err := FromPrivate(Secp256k1, priv)
		if err != nil {
			t.Fatalf("FromPrivate: %v", err)
		}
		a, _ := kp.PubUncompressed()
		b, _ := again.PubUncompressed()
		if !a.Equal(b) {
			t.Fatalf("public key not reproducible from private key")
		}
		c, _ := kp.PubCompressed()
		wantPrefix := byte(PubKeyCompressedEven)
		if a.At(-1)%2 == 1 {
			wantPrefix = PubKeyCompressedOdd
		}
		if c.At(0) != wantPrefix {
			t.Fatalf("compressed prefix %02x for y parity %d", c.At(0), a.At(-1)%2)
		}
	}
}

func TestFromPublic(t *testing.T) {
	kp, err := FromPublic(Secp256k1, hexData(t, testPubU))
	if err != nil {
		t.Fatalf("FromPublic uncompressed: %v", err)
	}
	if kp.HasPrivate() {
		t.Errorf("public-only keypair reports a private key")
	}
	if c, ok := kp.PubCompressed(); !ok || c.Hex() != testPubC {
		t.Errorf("compressed from uncompressed: got %v", c)
	}

	kp, err = FromPublic(Secp256k1, hexData(t, testPubC))
	if err != nil {
		t.Fatalf("FromPublic compressed: %v", err)
	}
	if _, ok := kp.PubUncompressed(); ok {
		t.Errorf("compressed-only keypair has an uncompressed key")
	}
	if c, ok := kp.PubCompressed(); !ok || c.Hex() != testPubC {
		t.Errorf("compressed: got %v", c)
	}

	u, err := Decompress(Secp256k1, hexData(t, testPubC))
	if err != nil || u.Hex() != testPubU {
		t.Errorf("Decompress: got %v (%v)", u, err)
	}
}

func TestFromPublicInvalid(t *testing.T) {
	tests := []string{
		"",
		"05" + testPubC[2:],
		testPubC[:64],
		"04" + testPubC[2:],
		// 不在曲线上的点。
		"02" + strings.Repeat("ff", 32),
	}
	for i, s := range tests {
		_, err := FromPublic(Secp256k1, hexData(t, s))
		if !errors.Is(err, ErrInvalidPublicKey) {
			t.Errorf("#%d: got %v, want ErrInvalidPublicKey", i, err)
		}
	}
}

func TestIsCompressed(t *testing.T) {
	if !IsCompressed(hexData(t, testPubC)) {
		t.Errorf("compressed key reported uncompressed")
	}
	if IsCompressed(hexData(t, testPubU)) {
		t.Errorf("uncompressed key reported compressed")
	}
}

func TestZero(t *testing.T) {
	kp, err := FromPrivate(Secp256k1, hexData(t, testPriv))
	if err != nil {
		t.Fatal(err)
	}
	kp.Zero()
	if kp.HasPrivate() {
		t.Errorf("private key survived Zero")
	}
	if _, ok := kp.PubCompressed(); !ok {
		t.Errorf("Zero dropped the public key")
	}
}

func TestCurve(t *testing.T) {
	c, err := ParseCurve("SECP256K1")
	if err != nil || c != Secp256k1 {
		t.Errorf("ParseCurve: %v %v", c, err)
	}
	if _, err := ParseCurve("p256"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("ParseCurve(p256): %v", err)
	}
	if Secp256k1.KeySize() != 32 || Secp256k1.String() != "secp256k1" {
		t.Errorf("unexpected curve metadata")
	}
}
