package order

import "strings"

func isValidFullName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidQuantity(quantity int32) bool {
	return quantity >= 1
}

func isValidProductID(id int64) bool {
	return id > 0
}
