package v1

import "net/http"

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.store.ListMovies()
	if err != nil {
		s.writeStoreError(w, "movie", err)
		return
	}

	resp := make([]movieResponse, len(movies))
	for i, m := range movies {
		resp[i] = movieToResponse(m)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.store.GetMovie(id)
	if err != nil {
		s.writeStoreError(w, "movie", err)
		return
	}
	writeJSON(w, http.StatusOK, movieToResponse(m))
}

func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	var req createMovieRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m := req.toCatalog()
	if err := s.store.AddMovie(m); err != nil {
		s.writeStoreError(w, "movie", err)
		return
	}
	writeJSON(w, http.StatusCreated, movieToResponse(m))
}

func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req moviePatchRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.store.UpdateMovie(id, req.toPatch())
	if err != nil {
		s.writeStoreError(w, "movie", err)
		return
	}
	writeJSON(w, http.StatusOK, movieToResponse(m))
}

func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.DeleteMovie(id); err != nil {
		s.writeStoreError(w, "movie", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Movie deleted"})
}
