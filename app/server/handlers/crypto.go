package handlers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

func newAEAD(key []byte) (cipher.AEAD, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not create new cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("could not create GCM: %w", err)
	}

	return gcm, nil
}

func (a *App) aesDecrypt(encryptedData []byte) ([]byte, error) {
	nonceSize := a.aead.NonceSize()
	if len(encryptedData) < nonceSize {
		return nil, fmt.Errorf("encrypted data too short")
	}

	nonce, ciphertext := encryptedData[:nonceSize], encryptedData[nonceSize:]
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decrypt ciphertext: %w", err)
	}

	return plaintext, nil
}

func (a *App) aesEncrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, a.aead.NonceSize())

	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	ciphertext := a.aead.Seal(nonce, nonce, plaintext, nil)
	return ciphertext, nil
}

// 手机号以密文储存，空值不加密
func (a *App) encryptPhone(phone string) ([]byte, error) {
	if phone == "" {
		return nil, nil
	}
	return a.aesEncrypt([]byte(phone))
}

func (a *App) decryptPhone(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	plaintext, err := a.aesDecrypt(data)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
