package upgrade

import "fmt"

// BookingNotFoundError signals an unknown booking id.
type BookingNotFoundError struct {
	BookingID string
}

func (e BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// NotPaidError signals a booking whose payment has not been captured.
type NotPaidError struct {
	BookingID string
	Status    string
}

func (e NotPaidError) Error() string {
	return fmt.Sprintf("booking %s is not paid (status %q)", e.BookingID, e.Status)
}

// UpgradeLinkNotFoundError signals an unknown upgrade slug, or a link whose
// target package is missing from the catalog.
type UpgradeLinkNotFoundError struct {
	Slug string
}

func (e UpgradeLinkNotFoundError) Error() string {
	return fmt.Sprintf("upgrade link %q not found", e.Slug)
}

// NotEligibleError signals a booking whose package has no default upgrade path.
type NotEligibleError struct {
	PackageTitle string
}

func (e NotEligibleError) Error() string {
	return fmt.Sprintf("package %q has no upgrade path", e.PackageTitle)
}

// TargetPackageMissingError signals that the default upgrade target is not in
// the catalog.
type TargetPackageMissingError struct {
	Title string
}

func (e TargetPackageMissingError) Error() string {
	return fmt.Sprintf("upgrade target package %q is not in the catalog", e.Title)
}

// AlreadyAtTargetError signals that the order already includes the target package.
type AlreadyAtTargetError struct {
	PackageTitle string
}

func (e AlreadyAtTargetError) Error() string {
	return fmt.Sprintf("order already includes package %q", e.PackageTitle)
}
