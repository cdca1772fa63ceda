package naming

import (
	"fmt"
	"strings"

	utilvalidation "k8s.io/apimachinery/pkg/util/validation"
)

const (
	ingressClassNameMaxLength = utilvalidation.DNS1123SubdomainMaxLength
	endpointNameMaxLength     = 64
)

func validateDNS1123Subdomain(name string, maximum int, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", kind, maximum)
	}
	if errs := utilvalidation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return fmt.Errorf("invalid %s name: %s", kind, strings.Join(errs, ", "))
	}
	return nil
}

// ValidateIngressClassName checks that name is a valid IngressClass and Ingress
// object name (DNS-1123 subdomain).
func ValidateIngressClassName(name string) error {
	return validateDNS1123Subdomain(name, ingressClassNameMaxLength, "ingress class")
}

// ValidateEndpointName checks a human readable endpoint name.
func ValidateEndpointName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("endpoint name must not be empty")
	}
	if len(name) > endpointNameMaxLength {
		return fmt.Errorf("endpoint name exceeds %d characters", endpointNameMaxLength)
	}
	return nil
}
