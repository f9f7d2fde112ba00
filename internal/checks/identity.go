package checks

import "strings"

// checkPersonal fails when the username or the email local-part occurs in
// the password. Passes vacuously when no identity context is supplied.
func checkPersonal(in *Input) Result {
	if in.Username == "" && in.Email == "" {
		return pass()
	}

	var personal []string
	if in.Username != "" {
		personal = append(personal, strings.ToLower(in.Username))
	}
	if in.Email != "" {
		local, _, _ := strings.Cut(in.Email, "@")
		personal = append(personal, strings.ToLower(local))
	}

	lower := in.Lower()
	for _, info := range personal {
		if info != "" && strings.Contains(lower, info) {
			return fail("contains your username or email")
		}
	}
	return pass()
}

// checkReuse fails when the candidate equals or contains the old password
// (case-insensitive), or matches a hash in the reuse history.
func checkReuse(in *Input) Result {
	if in.OldPassword != "" {
		oldLower := strings.ToLower(in.OldPassword)
		if in.Lower() == oldLower || strings.Contains(in.Lower(), oldLower) {
			return fail("too similar to the previous password")
		}
	}
	if in.History != nil && in.History.Contains(in.Password) {
		return fail("matches a password in your history")
	}
	return pass()
}
