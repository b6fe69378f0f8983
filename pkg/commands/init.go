package commands

// Init creates an empty manifest in the repository
func Init(opts Options) error {
	s, err := open(opts, true, false)
	if err != nil {
		return err
	}
	defer s.close()

	return s.service.Init()
}
