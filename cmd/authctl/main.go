// Command authctl is a small operator tool for creating accounts against a
// running server. The password is read without echo.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"
)

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Println(label)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(label string) (string, error) {
	fmt.Println(label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func main() {

	serverURL := flag.String("server", "http://localhost:5000", "server base URL")
	flag.Parse()

	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Enter name")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	email, err := prompt(reader, "Enter email")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	dateOfBirth, err := prompt(reader, "Enter date of birth (YYYY-MM-DD)")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	question, err := prompt(reader, "Enter security question")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	answer, err := prompt(reader, "Enter security answer")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	password, err := promptPassword("Enter password")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	body, err := json.Marshal(map[string]string{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirmPassword":  confirm,
		"dateOfBirth":      dateOfBirth,
		"securityQuestion": question,
		"securityAnswer":   answer,
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	resp, err := http.Post(*serverURL+"/app/v1/auth/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		fmt.Printf("sign-up failed (%d): %s\n", resp.StatusCode, out)
		return
	}

	fmt.Println("Success!")

}
