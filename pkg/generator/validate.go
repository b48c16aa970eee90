package generator

// Validate reports every required name absent from env, in the order given.
// An empty value counts as present.
func Validate(env Environment, required []string) error {
	var missing []string

	for _, name := range required {
		if _, ok := env.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &MissingVariablesError{Names: missing}
	}

	return nil
}
