// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

const testEntry = `<entry xmlns="http://www.w3.org/2005/Atom"><content type="application/xml">` +
	`<m:properties><d:Name>Go</d:Name><d:Url>https://go.dev</d:Url></m:properties></content></entry>`

func TestHasher_Hash(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(testEntry)

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// эталон считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_HashHexMatchesHashString(t *testing.T) {
	h := NewHasher(testHashKey)

	got := h.HashHex([]byte(testEntry))
	want := HashString(testEntry, testHashKey)

	if got != want {
		t.Errorf("Hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if _, err := hex.DecodeString(got); err != nil {
		t.Errorf("expected hex output, got %q", got)
	}
}

// TestHasher_DifferentKeys проверяет что разные ключи дают разные хеши
func TestHasher_DifferentKeys(t *testing.T) {
	hash1 := NewHasher("key-one").HashHex([]byte(testEntry))
	hash2 := NewHasher("key-two").HashHex([]byte(testEntry))

	if hash1 == hash2 {
		t.Error("different keys must produce different hashes for the same payload")
	}
}

func TestHasher_DifferentPayloads(t *testing.T) {
	h := NewHasher(testHashKey)

	if h.HashHex([]byte("<entry>a</entry>")) == h.HashHex([]byte("<entry>b</entry>")) {
		t.Error("different payloads must produce different hashes")
	}
}

func TestHasher_Equal(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(testEntry)
	signature := h.HashHex(data)

	if !h.Equal(data, signature) {
		t.Error("expected signature to match")
	}
	if h.Equal([]byte("tampered"), signature) {
		t.Error("expected tampered payload to be rejected")
	}
	if h.Equal(data, "not-hex") {
		t.Error("expected malformed signature to be rejected")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.HashHex([]byte(testEntry))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.HashHex([]byte(testEntry)); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
