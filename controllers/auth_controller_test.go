package controllers

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
)

// Cada peticion de login parsea sus credenciales en una variable
// propia; bajo concurrencia ningun usuario puede quedar con las
// credenciales de otro.
func TestLoginInputPorPeticionNoSeMezcla(t *testing.T) {
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"username":"usuario%d","password":"clave%d"}`, i, i)

			var input LoginInput
			if err := json.Unmarshal([]byte(body), &input); err != nil {
				t.Errorf("unmarshal: %v", err)
				return
			}

			if input.Username != fmt.Sprintf("usuario%d", i) {
				t.Errorf("username = %q, esperaba usuario%d", input.Username, i)
			}
			if input.Password != fmt.Sprintf("clave%d", i) {
				t.Errorf("password = %q, esperaba clave%d", input.Password, i)
			}
		}(i)
	}
	wg.Wait()
}
